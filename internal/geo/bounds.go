package geo

import (
	"math"

	"github.com/evergreenlab/plantmap/internal/kml"
)

// Bounds computes the [west, south, east, north] extent over every
// coordinate in marks, polygon holes included. The second return is false
// when the placemarks carry no coordinates at all.
func Bounds(marks []kml.Placemark) ([]float64, bool) {
	west, south := math.Inf(1), math.Inf(1)
	east, north := math.Inf(-1), math.Inf(-1)
	seen := false

	extend := func(coords []kml.Coordinate) {
		for _, c := range coords {
			seen = true
			west = math.Min(west, c.Lon)
			east = math.Max(east, c.Lon)
			south = math.Min(south, c.Lat)
			north = math.Max(north, c.Lat)
		}
	}

	for _, pm := range marks {
		for _, g := range pm.Geometries {
			extend(g.Coordinates)
			for _, hole := range g.Holes {
				extend(hole)
			}
		}
	}

	if !seen {
		return nil, false
	}
	return []float64{west, south, east, north}, true
}
