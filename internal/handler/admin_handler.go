package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/vacances-backend-go/internal/service"
	"github.com/jengzang/vacances-backend-go/pkg/response"
)

// AdminHandler exposes cache maintenance
type AdminHandler struct {
	service *service.VacationService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service *service.VacationService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ClearCache handles DELETE /api/v1/admin/cache
func (h *AdminHandler) ClearCache(c *gin.Context) {
	n, err := h.service.ClearCache()
	if err != nil {
		response.InternalError(c, "Failed to clear cache", err)
		return
	}
	response.Success(c, gin.H{"removed": n})
}

// Refresh handles POST /api/v1/admin/refresh
func (h *AdminHandler) Refresh(c *gin.Context) {
	if err := h.service.Refresh(c.Request.Context()); err != nil {
		fail(c, "Refresh incomplete", err)
		return
	}
	response.Success(c, gin.H{"refreshed": true})
}
