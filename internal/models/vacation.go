package models

import "time"

// AllZonesLabel is the zone label of periods shared by every zone
const AllZonesLabel = "Toutes zones"

// VacationPeriod is a school-vacation record as returned by the open-data API.
// Dates are calendar dates; both bounds are inclusive.
type VacationPeriod struct {
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Zones       string `json:"zones"`
	Location    string `json:"location"`
	Population  string `json:"population,omitempty"`
	SchoolYear  string `json:"annee_scolaire,omitempty"`
}

// VacationsResponse is the envelope of the open-data records endpoint
type VacationsResponse struct {
	Results    []VacationPeriod `json:"results"`
	TotalCount int              `json:"total_count"`
}

// StatusKind tells whether today falls inside a vacation
type StatusKind string

const (
	StatusInVacation StatusKind = "in_vacation"
	StatusInSchool   StatusKind = "in_school"
)

// EventKind names the next calendar transition
type EventKind string

const (
	EventVacationStart EventKind = "vacation_start"
	EventSchoolStart   EventKind = "school_start"
)

// CurrentStatus is derived from "now" and one snapshot of vacation periods
type CurrentStatus struct {
	Status          StatusKind      `json:"status"`
	CurrentVacation *VacationPeriod `json:"currentVacation,omitempty"`
	NextVacation    VacationPeriod  `json:"nextVacation"`
	NextEvent       time.Time       `json:"nextEvent"`
	EventType       EventKind       `json:"eventType"`

	// ResumeDate is the day after the current vacation ends (in_vacation only)
	ResumeDate *time.Time `json:"resumeDate,omitempty"`
	// Skipped counts malformed periods ignored during resolution
	Skipped int `json:"skipped,omitempty"`
}

// TimeRemaining is a non-negative countdown decomposition
type TimeRemaining struct {
	Days      int64 `json:"days"`
	Hours     int64 `json:"hours"`
	Minutes   int64 `json:"minutes"`
	Seconds   int64 `json:"seconds"`
	IsExpired bool  `json:"isExpired"`
}

// TotalSeconds reconstructs the whole-second difference
func (t TimeRemaining) TotalSeconds() int64 {
	return t.Days*86400 + t.Hours*3600 + t.Minutes*60 + t.Seconds
}
