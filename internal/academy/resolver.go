package academy

import (
	"errors"

	"github.com/jengzang/vacances-backend-go/internal/models"
	"github.com/jengzang/vacances-backend-go/internal/spatial"
)

// ErrNoMatchingLocation is returned when the reference table is empty
var ErrNoMatchingLocation = errors.New("no matching academy")

// All returns a copy of the reference table in table order
func All() []models.Academy {
	out := make([]models.Academy, len(academies))
	copy(out, academies)
	return out
}

// ByID returns the academy with the given id
func ByID(id string) (models.Academy, bool) {
	for _, a := range academies {
		if a.ID == id {
			return a, true
		}
	}
	return models.Academy{}, false
}

// ByZone returns the academies of one zone, in table order
func ByZone(zone models.Zone) []models.Academy {
	var out []models.Academy
	for _, a := range academies {
		if a.Zone == zone {
			out = append(out, a)
		}
	}
	return out
}

// Nearest returns the academy closest to (lat, lng) over the full table.
// On equal distances the first academy in table order wins.
func Nearest(lat, lng float64) (models.NearestAcademy, error) {
	return NearestIn(academies, lat, lng)
}

// NearestIn is Nearest over an arbitrary table
func NearestIn(table []models.Academy, lat, lng float64) (models.NearestAcademy, error) {
	if len(table) == 0 {
		return models.NearestAcademy{}, ErrNoMatchingLocation
	}

	best := models.NearestAcademy{
		Academy:    table[0],
		DistanceKm: spatial.HaversineDistance(lat, lng, table[0].Coords.Latitude, table[0].Coords.Longitude),
	}
	for _, a := range table[1:] {
		d := spatial.HaversineDistance(lat, lng, a.Coords.Latitude, a.Coords.Longitude)
		// strict comparison keeps the earlier entry on ties
		if d < best.DistanceKm {
			best = models.NearestAcademy{Academy: a, DistanceKm: d}
		}
	}
	return best, nil
}

// ZoneFromCoords returns the zone of the academy closest to (lat, lng)
func ZoneFromCoords(lat, lng float64) (models.Zone, error) {
	n, err := Nearest(lat, lng)
	if err != nil {
		return "", err
	}
	return n.Academy.Zone, nil
}
