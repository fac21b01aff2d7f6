package academy

import "github.com/jengzang/vacances-backend-go/internal/models"

// academies is the fixed reference table, ordered by zone then name.
// Overseas academies come last.
var academies = []models.Academy{
	{ID: "besancon", Name: "Besançon", Zone: models.ZoneA, Coords: models.Coordinates{Latitude: 47.2505, Longitude: 6.0244}, Departments: []string{"25", "39", "70", "90"}},
	{ID: "bordeaux", Name: "Bordeaux", Zone: models.ZoneA, Coords: models.Coordinates{Latitude: 44.8378, Longitude: -0.5792}, Departments: []string{"24", "33", "47", "64"}},
	{ID: "clermont-ferrand", Name: "Clermont-Ferrand", Zone: models.ZoneA, Coords: models.Coordinates{Latitude: 45.7772, Longitude: 3.0862}, Departments: []string{"03", "15", "43", "63"}},
	{ID: "dijon", Name: "Dijon", Zone: models.ZoneA, Coords: models.Coordinates{Latitude: 47.322, Longitude: 5.0418}, Departments: []string{"21", "58", "71", "89"}},
	{ID: "grenoble", Name: "Grenoble", Zone: models.ZoneA, Coords: models.Coordinates{Latitude: 45.1885, Longitude: 5.7245}, Departments: []string{"05", "38", "73", "74"}},
	{ID: "limoges", Name: "Limoges", Zone: models.ZoneA, Coords: models.Coordinates{Latitude: 45.8336, Longitude: 1.2611}, Departments: []string{"16", "19", "23", "87"}},
	{ID: "lyon", Name: "Lyon", Zone: models.ZoneA, Coords: models.Coordinates{Latitude: 45.764, Longitude: 4.8357}, Departments: []string{"01", "42", "69"}},
	{ID: "poitiers", Name: "Poitiers", Zone: models.ZoneA, Coords: models.Coordinates{Latitude: 46.58, Longitude: 0.34}, Departments: []string{"17", "79", "86"}},
	{ID: "aix-marseille", Name: "Aix-Marseille", Zone: models.ZoneB, Coords: models.Coordinates{Latitude: 43.2965, Longitude: 5.3698}, Departments: []string{"04", "05", "13", "84"}},
	{ID: "amiens", Name: "Amiens", Zone: models.ZoneB, Coords: models.Coordinates{Latitude: 49.8941, Longitude: 2.2959}, Departments: []string{"02", "60", "80"}},
	{ID: "caen", Name: "Caen", Zone: models.ZoneB, Coords: models.Coordinates{Latitude: 49.1829, Longitude: -0.366}, Departments: []string{"14", "50", "61"}},
	{ID: "lille", Name: "Lille", Zone: models.ZoneB, Coords: models.Coordinates{Latitude: 50.6292, Longitude: 3.0573}, Departments: []string{"59", "62"}},
	{ID: "nancy-metz", Name: "Nancy-Metz", Zone: models.ZoneB, Coords: models.Coordinates{Latitude: 48.6921, Longitude: 6.1844}, Departments: []string{"54", "55", "57"}},
	{ID: "nantes", Name: "Nantes", Zone: models.ZoneB, Coords: models.Coordinates{Latitude: 47.2184, Longitude: -1.5536}, Departments: []string{"44", "49", "53", "72", "85"}},
	{ID: "nice", Name: "Nice", Zone: models.ZoneB, Coords: models.Coordinates{Latitude: 43.7102, Longitude: 7.262}, Departments: []string{"06", "83"}},
	{ID: "orleans-tours", Name: "Orléans-Tours", Zone: models.ZoneB, Coords: models.Coordinates{Latitude: 47.9029, Longitude: 1.909}, Departments: []string{"18", "28", "36", "37", "41", "45"}},
	{ID: "reims", Name: "Reims", Zone: models.ZoneB, Coords: models.Coordinates{Latitude: 49.2583, Longitude: 4.0347}, Departments: []string{"08", "10", "51", "52"}},
	{ID: "rennes", Name: "Rennes", Zone: models.ZoneB, Coords: models.Coordinates{Latitude: 48.1113, Longitude: -1.68}, Departments: []string{"22", "29", "35", "56"}},
	{ID: "rouen", Name: "Rouen", Zone: models.ZoneB, Coords: models.Coordinates{Latitude: 49.4432, Longitude: 1.0993}, Departments: []string{"27", "76"}},
	{ID: "strasbourg", Name: "Strasbourg", Zone: models.ZoneB, Coords: models.Coordinates{Latitude: 48.5734, Longitude: 7.7521}, Departments: []string{"67", "68"}},
	{ID: "creteil", Name: "Créteil", Zone: models.ZoneC, Coords: models.Coordinates{Latitude: 48.9789, Longitude: 2.4502}, Departments: []string{"75", "77", "94"}},
	{ID: "montpellier", Name: "Montpellier", Zone: models.ZoneC, Coords: models.Coordinates{Latitude: 43.6108, Longitude: 3.8767}, Departments: []string{"11", "30", "34", "48"}},
	{ID: "paris", Name: "Paris", Zone: models.ZoneC, Coords: models.Coordinates{Latitude: 48.8566, Longitude: 2.3522}, Departments: []string{"75"}},
	{ID: "toulouse", Name: "Toulouse", Zone: models.ZoneC, Coords: models.Coordinates{Latitude: 43.6047, Longitude: 1.4442}, Departments: []string{"09", "12", "31", "32", "46", "65", "81", "82"}},
	{ID: "versailles", Name: "Versailles", Zone: models.ZoneC, Coords: models.Coordinates{Latitude: 48.8055, Longitude: 2.1211}, Departments: []string{"75", "78", "91", "92", "95"}},
	{ID: "corse", Name: "Corse", Zone: models.ZoneA, Coords: models.Coordinates{Latitude: 42.0896, Longitude: 8.563}, Departments: []string{"2A", "2B"}},
	{ID: "guadeloupe", Name: "Guadeloupe", Zone: models.ZoneA, Coords: models.Coordinates{Latitude: 16.2517, Longitude: -61.5347}, Departments: []string{"971"}},
	{ID: "guyane", Name: "Guyane", Zone: models.ZoneA, Coords: models.Coordinates{Latitude: 4.9371, Longitude: -52.1899}, Departments: []string{"973"}},
	{ID: "martinique", Name: "Martinique", Zone: models.ZoneA, Coords: models.Coordinates{Latitude: 14.6349, Longitude: -61.0242}, Departments: []string{"972"}},
	{ID: "reunion", Name: "Réunion", Zone: models.ZoneA, Coords: models.Coordinates{Latitude: -21.1151, Longitude: 55.5364}, Departments: []string{"974"}},
}
