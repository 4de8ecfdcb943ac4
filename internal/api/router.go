package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/waytrack/walks-backend-go/internal/config"
	"github.com/waytrack/walks-backend-go/internal/handler"
	"github.com/waytrack/walks-backend-go/internal/middleware"
)

// SetupRouter builds the gin engine with all routes and middleware
func SetupRouter(cfg *config.Config, recorderHandler *handler.RecorderHandler, walkHandler *handler.WalkHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger("/health", "/metrics"))
	r.Use(gin.Recovery())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Walks Backend API is running",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))
	api.Use(middleware.Auth(cfg.JWTSecret))
	{
		recorder := api.Group("/recorder")
		{
			recorder.POST("/start", recorderHandler.Start)
			recorder.POST("/pause", recorderHandler.Pause)
			recorder.POST("/resume", recorderHandler.Resume)
			recorder.POST("/stop", recorderHandler.Stop)
			recorder.POST("/samples", recorderHandler.AddSample)
			recorder.GET("/status", recorderHandler.Status)
		}

		walks := api.Group("/walks")
		{
			walks.GET("", walkHandler.ListWalks)
			walks.POST("", walkHandler.CreateWalk)
			walks.GET("/stats", walkHandler.GetStats)
			walks.DELETE("", walkHandler.ClearWalks)
			walks.PATCH("/:id", walkHandler.UpdateWalk)
			walks.DELETE("/:id", walkHandler.DeleteWalk)
		}
	}

	return r
}
