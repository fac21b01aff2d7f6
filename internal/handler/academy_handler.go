package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/vacances-backend-go/internal/academy"
	"github.com/jengzang/vacances-backend-go/internal/models"
	"github.com/jengzang/vacances-backend-go/internal/service"
	"github.com/jengzang/vacances-backend-go/internal/spatial"
	"github.com/jengzang/vacances-backend-go/pkg/response"
)

// AcademyHandler serves the academy reference table
type AcademyHandler struct{}

// NewAcademyHandler creates a new academy handler
func NewAcademyHandler() *AcademyHandler {
	return &AcademyHandler{}
}

// GetAcademies handles GET /api/v1/academies
func (h *AcademyHandler) GetAcademies(c *gin.Context) {
	list := academy.All()
	if z := c.Query("zone"); z != "" {
		zone, ok := models.ParseZone(z)
		if !ok {
			fail(c, "Invalid zone", fmt.Errorf("%w: %q", service.ErrInvalidZone, z))
			return
		}
		list = academy.ByZone(zone)
	}

	response.Success(c, gin.H{
		"data":  list,
		"total": len(list),
	})
}

// GetAcademyByID handles GET /api/v1/academies/:id
func (h *AcademyHandler) GetAcademyByID(c *gin.Context) {
	a, ok := academy.ByID(c.Param("id"))
	if !ok {
		response.NotFound(c, "Academy not found")
		return
	}
	response.Success(c, a)
}

// GetNearest handles GET /api/v1/academies/nearest?lat=&lng=
func (h *AcademyHandler) GetNearest(c *gin.Context) {
	var q models.StatusQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	if !q.HasCoordinates() || !spatial.ValidCoordinates(*q.Latitude, *q.Longitude) {
		response.Error(c, http.StatusBadRequest, "lat and lng are required", service.ErrInvalidCoordinates)
		return
	}

	nearest, err := academy.Nearest(*q.Latitude, *q.Longitude)
	if err != nil {
		response.InternalError(c, "Failed to resolve academy", err)
		return
	}
	response.Success(c, nearest)
}
