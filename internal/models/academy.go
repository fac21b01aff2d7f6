package models

import "strings"

// Zone is one of the three French school-vacation zones
type Zone string

const (
	ZoneA Zone = "A"
	ZoneB Zone = "B"
	ZoneC Zone = "C"
)

// Zones lists every zone in display order
var Zones = []Zone{ZoneA, ZoneB, ZoneC}

// ParseZone accepts "A", "b", "Zone C" and returns the matching zone
func ParseZone(s string) (Zone, bool) {
	s = strings.TrimSpace(strings.ToUpper(s))
	s = strings.TrimPrefix(s, "ZONE ")
	switch Zone(s) {
	case ZoneA, ZoneB, ZoneC:
		return Zone(s), true
	}
	return "", false
}

// Label returns the zone as written by the open-data API (e.g. "Zone A")
func (z Zone) Label() string {
	return "Zone " + string(z)
}

// Coordinates is a latitude/longitude pair in degrees
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Academy is a reference location standing in for an academy's center
type Academy struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Zone        Zone        `json:"zone"`
	Coords      Coordinates `json:"coords"`
	Departments []string    `json:"departments"`
}

// NearestAcademy is an academy together with its distance to a query point
type NearestAcademy struct {
	Academy    Academy `json:"academy"`
	DistanceKm float64 `json:"distanceKm"`
}
