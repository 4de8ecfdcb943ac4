package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/waytrack/walks-backend-go/internal/models"
	"github.com/waytrack/walks-backend-go/internal/recorder"
	"github.com/waytrack/walks-backend-go/internal/service"
	"github.com/waytrack/walks-backend-go/pkg/response"
)

// RecorderHandler handles HTTP requests controlling the live recording
type RecorderHandler struct {
	walkService *service.WalkService
}

// NewRecorderHandler creates a new recorder handler
func NewRecorderHandler(walkService *service.WalkService) *RecorderHandler {
	return &RecorderHandler{
		walkService: walkService,
	}
}

type startRequest struct {
	Mode string `json:"mode" binding:"required"`
}

// Start handles POST /api/v1/recorder/start
func (h *RecorderHandler) Start(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.walkService.StartRecording(req.Mode); err != nil {
		if errors.Is(err, recorder.ErrAlreadyRecording) {
			response.Conflict(c, err.Error())
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, h.walkService.Status())
}

// Pause handles POST /api/v1/recorder/pause
func (h *RecorderHandler) Pause(c *gin.Context) {
	h.walkService.PauseRecording()
	response.Success(c, h.walkService.Status())
}

// Resume handles POST /api/v1/recorder/resume
func (h *RecorderHandler) Resume(c *gin.Context) {
	h.walkService.ResumeRecording()
	response.Success(c, h.walkService.Status())
}

// Stop handles POST /api/v1/recorder/stop. A session below the
// acceptance thresholds is reported as saved=false, not as an error.
func (h *RecorderHandler) Stop(c *gin.Context) {
	walk, saved := h.walkService.StopRecording()

	if !saved {
		response.Success(c, gin.H{"saved": false})
		return
	}

	response.Success(c, gin.H{
		"saved": true,
		"walk":  walk,
	})
}

// AddSample handles POST /api/v1/recorder/samples
func (h *RecorderHandler) AddSample(c *gin.Context) {
	var sample models.LocationSample
	if err := c.ShouldBindJSON(&sample); err != nil {
		response.BadRequest(c, "Invalid location sample")
		return
	}

	h.walkService.AddSample(sample)
	response.Success(c, nil)
}

// Status handles GET /api/v1/recorder/status
func (h *RecorderHandler) Status(c *gin.Context) {
	response.Success(c, h.walkService.Status())
}
