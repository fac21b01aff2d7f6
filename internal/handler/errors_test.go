package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jengzang/vacances-backend-go/internal/gateway"
	"github.com/jengzang/vacances-backend-go/internal/service"
	"github.com/jengzang/vacances-backend-go/internal/vacation"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidCoordinates, http.StatusBadRequest},
		{fmt.Errorf("%w: %q", service.ErrInvalidZone, "D"), http.StatusBadRequest},
		{fmt.Errorf("%w: %q", service.ErrUnknownAcademy, "x"), http.StatusNotFound},
		{fmt.Errorf("resolve: %w", vacation.ErrNoVacationData), http.StatusServiceUnavailable},
		{fmt.Errorf("zone A: %w: deadline", gateway.ErrTimeout), http.StatusGatewayTimeout},
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
		{gateway.ErrUnavailable, http.StatusBadGateway},
		{fmt.Errorf("%w: 500", gateway.ErrBadStatus), http.StatusBadGateway},
		{fmt.Errorf("period 2: %w", vacation.ErrMalformedPeriod), http.StatusBadGateway},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := statusCode(tc.err); got != tc.want {
			t.Errorf("statusCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
