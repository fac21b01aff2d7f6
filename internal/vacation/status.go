package vacation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jengzang/vacances-backend-go/internal/models"
)

var (
	// ErrNoVacationData means no next vacation can be determined
	ErrNoVacationData = errors.New("no vacation data available")
	// ErrMalformedPeriod marks a period with unreadable dates or end < start
	ErrMalformedPeriod = errors.New("malformed vacation period")
)

// MalformedPolicy decides what the resolver does with malformed periods
type MalformedPolicy int

const (
	// SkipMalformed ignores malformed periods and counts them
	SkipMalformed MalformedPolicy = iota
	// RejectMalformed fails the whole resolution
	RejectMalformed
)

// ParseMalformedPolicy parses "skip" or "reject"
func ParseMalformedPolicy(s string) (MalformedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "skip":
		return SkipMalformed, nil
	case "reject":
		return RejectMalformed, nil
	}
	return SkipMalformed, fmt.Errorf("unknown malformed period policy %q", s)
}

func (p MalformedPolicy) String() string {
	if p == RejectMalformed {
		return "reject"
	}
	return "skip"
}

// Resolver computes CurrentStatus from "now" and a snapshot of periods.
// It keeps no state between calls.
type Resolver struct {
	loc    *time.Location
	policy MalformedPolicy
}

// Option configures a Resolver
type Option func(*Resolver)

// WithLocation sets the location used for midnight normalization.
// Without it the location of "now" is used.
func WithLocation(loc *time.Location) Option {
	return func(r *Resolver) { r.loc = loc }
}

// WithMalformedPolicy sets the malformed period policy
func WithMalformedPolicy(p MalformedPolicy) Option {
	return func(r *Resolver) { r.policy = p }
}

// NewResolver creates a resolver
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{policy: SkipMalformed}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveStatus resolves with default options
func ResolveStatus(now time.Time, periods []models.VacationPeriod) (*models.CurrentStatus, error) {
	return NewResolver().Status(now, periods)
}

type span struct {
	period     models.VacationPeriod
	start, end time.Time
}

// Status decides whether "now" falls in a vacation and finds the next one.
//
// In vacation, the next period is the earliest one starting on or after
// the day following the current period's end. In school, it is the
// earliest one starting strictly after today. Ties keep input order.
func (r *Resolver) Status(now time.Time, periods []models.VacationPeriod) (*models.CurrentStatus, error) {
	loc := r.loc
	if loc == nil {
		loc = now.Location()
	}
	today := Midnight(now.In(loc))

	spans := make([]span, 0, len(periods))
	skipped := 0
	for i, p := range periods {
		start, end, err := Bounds(p, loc)
		if err != nil {
			if r.policy == RejectMalformed {
				return nil, fmt.Errorf("period %d: %w", i, err)
			}
			skipped++
			continue
		}
		spans = append(spans, span{period: p, start: start, end: end})
	}
	if len(spans) == 0 {
		return nil, fmt.Errorf("%w: empty period list", ErrNoVacationData)
	}

	var current *span
	for i := range spans {
		if !today.Before(spans[i].start) && !today.After(spans[i].end) {
			current = &spans[i]
			break
		}
	}

	if current != nil {
		resume := current.end.AddDate(0, 0, 1)
		next := earliest(spans, func(s span) bool { return !s.start.Before(resume) })
		if next == nil {
			return nil, fmt.Errorf("%w: nothing after %s", ErrNoVacationData, FormatVacationName(current.period))
		}
		cur := current.period
		return &models.CurrentStatus{
			Status:          models.StatusInVacation,
			CurrentVacation: &cur,
			NextVacation:    next.period,
			NextEvent:       next.start,
			EventType:       models.EventSchoolStart,
			ResumeDate:      &resume,
			Skipped:         skipped,
		}, nil
	}

	next := earliest(spans, func(s span) bool { return s.start.After(today) })
	if next == nil {
		return nil, fmt.Errorf("%w: no vacation starts after %s", ErrNoVacationData, today.Format(dateLayout))
	}
	return &models.CurrentStatus{
		Status:       models.StatusInSchool,
		NextVacation: next.period,
		NextEvent:    next.start,
		EventType:    models.EventVacationStart,
		Skipped:      skipped,
	}, nil
}

// earliest returns the first span with the smallest start among those accepted
func earliest(spans []span, accept func(span) bool) *span {
	var best *span
	for i := range spans {
		if !accept(spans[i]) {
			continue
		}
		if best == nil || spans[i].start.Before(best.start) {
			best = &spans[i]
		}
	}
	return best
}
