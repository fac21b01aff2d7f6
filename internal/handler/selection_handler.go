package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/vacances-backend-go/internal/models"
	"github.com/jengzang/vacances-backend-go/internal/service"
	"github.com/jengzang/vacances-backend-go/pkg/response"
)

// SelectionHandler handles the manual academy selection
type SelectionHandler struct {
	service *service.SelectionService
}

// NewSelectionHandler creates a new selection handler
func NewSelectionHandler(service *service.SelectionService) *SelectionHandler {
	return &SelectionHandler{service: service}
}

// GetSelection handles GET /api/v1/selection
func (h *SelectionHandler) GetSelection(c *gin.Context) {
	a, err := h.service.Get()
	if err != nil {
		fail(c, "Failed to get selection", err)
		return
	}
	if a == nil {
		response.NotFound(c, "No academy selected")
		return
	}
	response.Success(c, a)
}

// SetSelection handles PUT /api/v1/selection
func (h *SelectionHandler) SetSelection(c *gin.Context) {
	var body models.Selection
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	a, err := h.service.Set(body.AcademyID)
	if err != nil {
		fail(c, "Failed to save selection", err)
		return
	}
	response.Success(c, a)
}

// ClearSelection handles DELETE /api/v1/selection
func (h *SelectionHandler) ClearSelection(c *gin.Context) {
	if err := h.service.Clear(); err != nil {
		response.InternalError(c, "Failed to clear selection", err)
		return
	}
	response.Success(c, nil)
}
