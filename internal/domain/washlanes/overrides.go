package washlanes

import "github.com/splashcamper/splashcamper-api/internal/domain/stations"

// Override pins the lane layout of a station known to lack lane data.
// ID matches exactly, Name matches as a normalized substring of the station name.
type Override struct {
	ID    string
	Name  string
	Lanes []stations.WashLane
}

// layout builds n lanes. The first portiques lanes get a portique, the first tall of those a tall one.
func layout(n, portiques, tall int, highPressure bool) []stations.WashLane {
	lanes := make([]stations.WashLane, n)
	for i := range lanes {
		lanes[i] = stations.WashLane{
			LaneNumber:      i + 1,
			HasHighPressure: highPressure,
			HasPortique:     i < portiques,
			HasTallPortique: i < tall,
		}
	}
	return lanes
}

// DefaultOverrides lists the stations whose layout was surveyed by hand
var DefaultOverrides = []Override{
	{ID: "station_3", Lanes: layout(2, 0, 0, true)},
	{ID: "station_8", Lanes: layout(3, 1, 1, true)},
	{ID: "station_11", Lanes: layout(1, 1, 1, false)},
	{ID: "station_17", Lanes: layout(4, 2, 1, true)},
	{ID: "station_21", Lanes: layout(2, 1, 0, true)},
	{ID: "station_26", Lanes: layout(3, 0, 0, true)},
	{Name: "Lavage des Alpes", Lanes: layout(3, 2, 2, true)},
	{Name: "Aire du Lac d'Annecy", Lanes: layout(2, 1, 1, true)},
	{Name: "Camping-Car Clean Vendée", Lanes: layout(2, 2, 1, true)},
	{Name: "Station Océane", Lanes: layout(4, 1, 1, true)},
	{Name: "Eurowash Perpignan", Lanes: layout(5, 2, 2, true)},
	{Name: "Lavauto Côte Basque", Lanes: layout(2, 0, 0, true)},
	{Name: "Wash & Go Bretagne", Lanes: layout(3, 1, 0, true)},
	{Name: "Hypromat Colmar", Lanes: layout(4, 1, 1, true)},
	{Name: "Aire de Rocamadour", Lanes: layout(1, 0, 0, true)},
	{Name: "Clean Van Provence", Lanes: layout(2, 1, 1, false)},
}

// BrandDefault is the layout assumed for stations of a known wash brand
func BrandDefault() []stations.WashLane {
	return []stations.WashLane{
		{LaneNumber: 1, HasHighPressure: true},
		{LaneNumber: 2, HasHighPressure: true, HasPortique: true},
	}
}
