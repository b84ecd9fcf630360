// Package geo holds the GeoJSON output model and the conversion from
// extracted placemarks.
package geo

// FeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure, with an optional foreign
// "properties" member used for attribution.
type FeatureCollection struct {
	Properties map[string]interface{} `json:"properties,omitempty" yaml:"properties,omitempty"`
	Type       string                 `json:"type" yaml:"type"`
	BBox       []float64              `json:"bbox,omitempty" yaml:"bbox,omitempty"`
	Features   []Feature              `json:"features" yaml:"features"`
}

// Feature represents a single geographic feature with geometry and
// properties.
type Feature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   Geometry               `json:"geometry" yaml:"geometry"`
}

// Geometry represents the geometry of a feature. Coordinates nests
// per GeoJSON rules: a position for Point, positions for LineString,
// rings of positions for Polygon.
type Geometry struct {
	Type        string      `json:"type" yaml:"type"`
	Coordinates interface{} `json:"coordinates" yaml:"coordinates"`
}
