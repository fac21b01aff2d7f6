package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/vacances-backend-go/internal/models"
	"github.com/jengzang/vacances-backend-go/internal/service"
	"github.com/jengzang/vacances-backend-go/pkg/response"
)

// StatusHandler handles HTTP requests for the current vacation status
type StatusHandler struct {
	service *service.StatusService
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(service *service.StatusService) *StatusHandler {
	return &StatusHandler{service: service}
}

// GetStatus handles GET /api/v1/status?academy=&lat=&lng=&remember=
func (h *StatusHandler) GetStatus(c *gin.Context) {
	var q models.StatusQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	snap, err := h.service.Status(c.Request.Context(), q)
	if err != nil {
		fail(c, "Failed to resolve vacation status", err)
		return
	}
	response.Success(c, snap)
}
