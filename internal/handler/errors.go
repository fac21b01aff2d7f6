package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/vacances-backend-go/internal/gateway"
	"github.com/jengzang/vacances-backend-go/internal/service"
	"github.com/jengzang/vacances-backend-go/internal/vacation"
	"github.com/jengzang/vacances-backend-go/pkg/response"
)

// statusCode maps domain errors onto HTTP status codes
func statusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidCoordinates), errors.Is(err, service.ErrInvalidZone):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnknownAcademy):
		return http.StatusNotFound
	case errors.Is(err, vacation.ErrNoVacationData):
		return http.StatusServiceUnavailable
	case errors.Is(err, gateway.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, gateway.ErrUnavailable), errors.Is(err, gateway.ErrBadStatus), errors.Is(err, vacation.ErrMalformedPeriod):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, message string, err error) {
	response.Error(c, statusCode(err), message, err)
}
