package vacation

import (
	"fmt"
	"strings"
	"time"

	"github.com/jengzang/vacances-backend-go/internal/models"
)

const dateLayout = "2006-01-02"

// Midnight returns 00:00 of t's calendar day, in t's location
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDate parses a "YYYY-MM-DD" or RFC3339 value and returns local
// midnight of the calendar day it denotes in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if loc == nil {
		loc = time.Local
	}

	if len(s) == len(dateLayout) {
		t, err := time.ParseInLocation(dateLayout, s, loc)
		if err != nil {
			return time.Time{}, err
		}
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return Midnight(t.In(loc)), nil
}

// Bounds returns the midnight-normalized start and end of a period.
// The error wraps ErrMalformedPeriod when a date is unreadable or the
// period ends before it starts.
func Bounds(p models.VacationPeriod, loc *time.Location) (start, end time.Time, err error) {
	start, err = ParseDate(p.StartDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start date %q: %v", ErrMalformedPeriod, p.StartDate, err)
	}
	end, err = ParseDate(p.EndDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end date %q: %v", ErrMalformedPeriod, p.EndDate, err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s ends before it starts (%s < %s)",
			ErrMalformedPeriod, FormatVacationName(p), end.Format(dateLayout), start.Format(dateLayout))
	}
	return start, end, nil
}

// Validate reports whether a period can take part in status resolution
func Validate(p models.VacationPeriod, loc *time.Location) error {
	_, _, err := Bounds(p, loc)
	return err
}

// Contains reports whether day falls within the period, bounds inclusive
func Contains(p models.VacationPeriod, day time.Time, loc *time.Location) bool {
	start, end, err := Bounds(p, loc)
	if err != nil {
		return false
	}
	if loc == nil {
		loc = day.Location()
	}
	d := Midnight(day.In(loc))
	return !d.Before(start) && !d.After(end)
}

// Overlaps reports whether two well-formed periods share at least one day
func Overlaps(a, b models.VacationPeriod, loc *time.Location) bool {
	aStart, aEnd, err := Bounds(a, loc)
	if err != nil {
		return false
	}
	bStart, bEnd, err := Bounds(b, loc)
	if err != nil {
		return false
	}
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// FindOverlaps returns the index pairs of overlapping periods
func FindOverlaps(periods []models.VacationPeriod, loc *time.Location) [][2]int {
	var pairs [][2]int
	for i := range periods {
		for j := i + 1; j < len(periods); j++ {
			if Overlaps(periods[i], periods[j], loc) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// FormatVacationName returns the display name of a period
func FormatVacationName(p models.VacationPeriod) string {
	if p.Description != "" {
		return p.Description
	}
	return "Vacances - " + p.Zones
}

// SchoolYear returns the "YYYY-YYYY" school year containing t.
// A school year starts in September.
func SchoolYear(t time.Time) string {
	y := t.Year()
	if t.Month() >= time.September {
		return fmt.Sprintf("%d-%d", y, y+1)
	}
	return fmt.Sprintf("%d-%d", y-1, y)
}
