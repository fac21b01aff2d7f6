package vacation

import (
	"time"

	"github.com/jengzang/vacances-backend-go/internal/models"
)

// Remaining decomposes target - now into days, hours, minutes and seconds.
// A target at or before now yields all zeros with IsExpired set.
func Remaining(target, now time.Time) models.TimeRemaining {
	diff := target.Sub(now)
	if diff <= 0 {
		return models.TimeRemaining{IsExpired: true}
	}

	total := int64(diff / time.Second)
	return models.TimeRemaining{
		Days:    total / 86400,
		Hours:   (total / 3600) % 24,
		Minutes: (total / 60) % 60,
		Seconds: total % 60,
	}
}
