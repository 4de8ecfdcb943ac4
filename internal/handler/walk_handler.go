package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/waytrack/walks-backend-go/internal/models"
	"github.com/waytrack/walks-backend-go/internal/service"
	"github.com/waytrack/walks-backend-go/pkg/response"
)

// WalkHandler handles HTTP requests for the walk history
type WalkHandler struct {
	walkService *service.WalkService
}

// NewWalkHandler creates a new walk handler
func NewWalkHandler(walkService *service.WalkService) *WalkHandler {
	return &WalkHandler{
		walkService: walkService,
	}
}

// ListWalks handles GET /api/v1/walks
func (h *WalkHandler) ListWalks(c *gin.Context) {
	var filter models.HistoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	walks, summary, err := h.walkService.History(filter)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":    walks,
		"count":   len(walks),
		"summary": summary,
	})
}

// GetStats handles GET /api/v1/walks/stats
func (h *WalkHandler) GetStats(c *gin.Context) {
	response.Success(c, h.walkService.Stats())
}

// CreateWalk handles POST /api/v1/walks, importing a walk finalized
// elsewhere (e.g. recorded offline on the device).
func (h *WalkHandler) CreateWalk(c *gin.Context) {
	var walk models.Walk
	if err := c.ShouldBindJSON(&walk); err != nil {
		response.BadRequest(c, "Invalid walk payload")
		return
	}

	saved, err := h.walkService.ImportWalk(walk)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, saved)
}

// DeleteWalk handles DELETE /api/v1/walks/:id. Deleting an unknown id
// succeeds; concurrent deletes from multiple UI triggers must not fail.
func (h *WalkHandler) DeleteWalk(c *gin.Context) {
	h.walkService.RemoveWalk(c.Param("id"))
	response.Success(c, nil)
}

// UpdateWalk handles PATCH /api/v1/walks/:id
func (h *WalkHandler) UpdateWalk(c *gin.Context) {
	var update models.WalkUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		response.BadRequest(c, "Invalid update payload")
		return
	}

	if !h.walkService.UpdateWalk(c.Param("id"), update) {
		response.NotFound(c, "Walk not found")
		return
	}

	response.Success(c, nil)
}

// ClearWalks handles DELETE /api/v1/walks
func (h *WalkHandler) ClearWalks(c *gin.Context) {
	h.walkService.ClearHistory()
	response.Success(c, nil)
}
