package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/vacances-backend-go/internal/models"
	"github.com/jengzang/vacances-backend-go/internal/service"
	"github.com/jengzang/vacances-backend-go/internal/ticker"
	"github.com/jengzang/vacances-backend-go/internal/vacation"
	"github.com/jengzang/vacances-backend-go/pkg/response"
)

// CountdownHandler serves one-shot and streamed countdowns
type CountdownHandler struct {
	status *service.StatusService
	loc    *time.Location
	opts   ticker.Options
}

// NewCountdownHandler creates a new countdown handler
func NewCountdownHandler(status *service.StatusService, loc *time.Location, opts ticker.Options) *CountdownHandler {
	if loc == nil {
		loc = time.Local
	}
	return &CountdownHandler{status: status, loc: loc, opts: opts}
}

// GetCountdown handles GET /api/v1/countdown?target=
// target is RFC3339 or a calendar date taken as midnight.
func (h *CountdownHandler) GetCountdown(c *gin.Context) {
	raw := c.Query("target")
	if raw == "" {
		response.BadRequest(c, "target is required", nil)
		return
	}

	target, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		target, err = vacation.ParseDate(raw, h.loc)
		if err != nil {
			response.BadRequest(c, "target must be RFC3339 or YYYY-MM-DD", err)
			return
		}
	}

	response.Success(c, gin.H{
		"target":    target,
		"remaining": vacation.Remaining(target, h.status.Now()),
	})
}

// Stream handles GET /api/v1/countdown/stream as server-sent events.
// A "status" event carries each resolved snapshot, "tick" events the
// remaining time. The status is resolved again after every expiry.
func (h *CountdownHandler) Stream(c *gin.Context) {
	var q models.StatusQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	// coordinates are remembered on the first lookup only
	first, err := h.status.Status(c.Request.Context(), q)
	if err != nil {
		fail(c, "Failed to resolve vacation status", err)
		return
	}
	q.Remember = false

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	send := func(event string, data interface{}) {
		c.SSEvent(event, data)
		c.Writer.Flush()
	}

	resolve := func(ctx context.Context) (time.Time, error) {
		snap := first
		first = nil
		if snap == nil {
			var err error
			if snap, err = h.status.Status(ctx, q); err != nil {
				return time.Time{}, err
			}
		}
		send("status", snap)
		return snap.Status.NextEvent, nil
	}

	err = ticker.Watch(c.Request.Context(), resolve, func(r models.TimeRemaining) {
		send("tick", r)
	}, h.opts)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		log.Printf("Countdown stream ended: %v", err)
		send("error", gin.H{"code": statusCode(err), "message": err.Error()})
	}
}
