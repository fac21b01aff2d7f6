package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/vacances-backend-go/internal/models"
	"github.com/jengzang/vacances-backend-go/internal/service"
	"github.com/jengzang/vacances-backend-go/pkg/response"
)

// VacationHandler handles HTTP requests for vacation periods
type VacationHandler struct {
	service *service.VacationService
}

// NewVacationHandler creates a new vacation handler
func NewVacationHandler(service *service.VacationService) *VacationHandler {
	return &VacationHandler{service: service}
}

// GetVacations handles GET /api/v1/vacations?zone=&year=
func (h *VacationHandler) GetVacations(c *gin.Context) {
	var filter models.VacationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	zone, ok := models.ParseZone(filter.Zone)
	if !ok {
		fail(c, "zone must be A, B or C", fmt.Errorf("%w: %q", service.ErrInvalidZone, filter.Zone))
		return
	}

	year := h.service.SchoolYearOf(filter.Year)
	periods, err := h.service.GetVacations(c.Request.Context(), zone, year)
	if err != nil {
		fail(c, "Failed to get vacations", err)
		return
	}

	response.Success(c, gin.H{
		"zone":       zone,
		"schoolYear": year,
		"data":       periods,
		"total":      len(periods),
	})
}

// GetAllZones handles GET /api/v1/vacations/all?year=
func (h *VacationHandler) GetAllZones(c *gin.Context) {
	var filter models.VacationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	year := h.service.SchoolYearOf(filter.Year)
	byZone, err := h.service.FetchAllZones(c.Request.Context(), year)
	if err != nil {
		fail(c, "Failed to get vacations", err)
		return
	}

	response.Success(c, gin.H{
		"schoolYear": year,
		"data":       byZone,
	})
}
