package models

import "time"

// StatusQuery holds the query parameters of the status endpoints
type StatusQuery struct {
	Academy   string   `form:"academy"`
	Latitude  *float64 `form:"lat"`
	Longitude *float64 `form:"lng"`
	Remember  bool     `form:"remember"`
}

// HasCoordinates reports whether both lat and lng were supplied
func (q StatusQuery) HasCoordinates() bool {
	return q.Latitude != nil && q.Longitude != nil
}

// VacationFilter represents the query parameters of the vacations endpoint
type VacationFilter struct {
	Zone string `form:"zone"`
	Year int    `form:"year"`
}

// ZoneSource tells where the zone of a status came from
type ZoneSource string

const (
	SourceSelection   ZoneSource = "selection"
	SourceGeolocation ZoneSource = "geolocation"
	SourceDefault     ZoneSource = "default"
)

// StatusSnapshot is the full answer of a status resolution
type StatusSnapshot struct {
	Academy   *Academy       `json:"academy,omitempty"`
	Zone      Zone           `json:"zone"`
	Source    ZoneSource     `json:"source"`
	Status    *CurrentStatus `json:"status"`
	Remaining TimeRemaining  `json:"remaining"`
	Name      string         `json:"name"`
	At        time.Time      `json:"at"`
}

// Selection is the persisted manual academy choice
type Selection struct {
	AcademyID string `json:"academy" binding:"required"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
