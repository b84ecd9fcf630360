package geo

import "github.com/evergreenlab/plantmap/internal/kml"

// FromPlacemarks flattens extracted placemarks into a feature collection,
// one feature per geometry. Placemark name and description travel in the
// feature properties and are omitted when absent. The collection carries a
// bbox spanning every emitted position.
func FromPlacemarks(marks []kml.Placemark) FeatureCollection {
	fc := FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}

	for _, pm := range marks {
		for _, g := range pm.Geometries {
			fc.Features = append(fc.Features, Feature{
				Type:       "Feature",
				Geometry:   fromGeometry(g),
				Properties: featureProperties(pm),
			})
		}
	}

	if bbox, ok := Bounds(marks); ok {
		fc.BBox = bbox
	}

	return fc
}

func featureProperties(pm kml.Placemark) map[string]interface{} {
	props := map[string]interface{}{}
	if pm.Name != "" {
		props["name"] = pm.Name
	}
	if pm.Description != "" {
		props["description"] = pm.Description
	}
	return props
}

func fromGeometry(g kml.Geometry) Geometry {
	switch g.Type {
	case kml.TypePoint:
		return Geometry{Type: "Point", Coordinates: position(g.Coordinates[0], allHaveAlt(g.Coordinates))}
	case kml.TypeLineString:
		return Geometry{Type: "LineString", Coordinates: sequence(g.Coordinates)}
	default:
		rings := make([][][]float64, 0, 1+len(g.Holes))
		rings = append(rings, sequence(g.Coordinates))
		for _, hole := range g.Holes {
			rings = append(rings, sequence(hole))
		}
		return Geometry{Type: "Polygon", Coordinates: rings}
	}
}

// sequence serializes a coordinate list, 3D only when every member carries
// an altitude; a single 2D coordinate collapses the whole sequence to 2D.
func sequence(coords []kml.Coordinate) [][]float64 {
	withAlt := allHaveAlt(coords)
	out := make([][]float64, 0, len(coords))
	for _, c := range coords {
		out = append(out, position(c, withAlt))
	}
	return out
}

func position(c kml.Coordinate, withAlt bool) []float64 {
	if withAlt {
		return []float64{c.Lon, c.Lat, c.Alt}
	}
	return []float64{c.Lon, c.Lat}
}

func allHaveAlt(coords []kml.Coordinate) bool {
	for _, c := range coords {
		if !c.HasAlt {
			return false
		}
	}
	return true
}
