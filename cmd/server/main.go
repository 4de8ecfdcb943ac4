package main

import (
	"log"

	"github.com/waytrack/walks-backend-go/internal/api"
	"github.com/waytrack/walks-backend-go/internal/config"
	"github.com/waytrack/walks-backend-go/internal/handler"
	"github.com/waytrack/walks-backend-go/internal/history"
	"github.com/waytrack/walks-backend-go/internal/recorder"
	"github.com/waytrack/walks-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	rec := recorder.New()
	store := history.NewStore(cfg.MaxHistory)
	walkService := service.NewWalkService(rec, store)

	recorderHandler := handler.NewRecorderHandler(walkService)
	walkHandler := handler.NewWalkHandler(walkService)

	router := api.SetupRouter(cfg, recorderHandler, walkHandler)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
