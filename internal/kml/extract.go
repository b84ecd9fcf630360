package kml

import "strings"

// GeometryType tags the variant held by a Geometry.
type GeometryType string

// Geometry kinds extracted from KML documents.
const (
	TypePoint      GeometryType = "Point"
	TypeLineString GeometryType = "LineString"
	TypePolygon    GeometryType = "Polygon"
)

// Geometry is one extracted shape. Coordinates holds the single position of
// a Point, the path of a LineString or the outer ring of a Polygon; Holes
// is populated for polygons only.
type Geometry struct {
	Type        GeometryType   `json:"type" yaml:"type"`
	Coordinates []Coordinate   `json:"coordinates" yaml:"coordinates"`
	Holes       [][]Coordinate `json:"holes,omitempty" yaml:"holes,omitempty"`
}

// Placemark is one named feature from the source document. Name and
// Description are empty when the source element is missing or blank.
type Placemark struct {
	Name        string     `json:"name,omitempty" yaml:"name,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Geometries  []Geometry `json:"geometries" yaml:"geometries"`
}

// ExtractPlacemarks parses a KML document and returns its placemarks in
// document order. A document the XML parser rejects wraps ErrParse and
// yields no partial result; within a parsed document, malformed coordinate
// tokens and incomplete geometry elements are dropped silently so one bad
// feature cannot abort the rest of a large export.
func ExtractPlacemarks(text string) ([]Placemark, error) {
	root, err := parseTree(text)
	if err != nil {
		return nil, err
	}

	marks := []Placemark{}
	for _, pm := range root.findAll("Placemark") {
		marks = append(marks, Placemark{
			Name:        textOf(pm.findFirst("name")),
			Description: textOf(pm.findFirst("description")),
			Geometries:  extractGeometries(pm),
		})
	}

	return marks, nil
}

// extractGeometries collects every shape below a placemark element. The
// scan matches local names anywhere in the subtree, so geometries nested in
// MultiGeometry or other grouping containers are found without any
// container-specific handling.
func extractGeometries(pm *element) []Geometry {
	var geoms []Geometry

	for _, pt := range pm.findAll("Point") {
		coords := ringCoordinates(pt)
		if len(coords) == 0 {
			continue
		}
		// a Point carrying extra tuples keeps only the first
		geoms = append(geoms, Geometry{Type: TypePoint, Coordinates: coords[:1]})
	}

	for _, ls := range pm.findAll("LineString") {
		coords := ringCoordinates(ls)
		if len(coords) == 0 {
			continue
		}
		geoms = append(geoms, Geometry{Type: TypeLineString, Coordinates: coords})
	}

	for _, poly := range pm.findAll("Polygon") {
		if g, ok := assemblePolygon(poly); ok {
			geoms = append(geoms, g)
		}
	}

	return geoms
}

// assemblePolygon resolves a polygon's outer ring and holes. Explicit
// outerBoundaryIs/innerBoundaryIs wrappers take precedence; only when they
// yield no outer ring are bare LinearRing elements scanned instead, the
// first becoming the outer ring and the rest extra holes. A polygon with no
// resolvable outer ring is discarded, holes and all.
func assemblePolygon(poly *element) (Geometry, bool) {
	var outer []Coordinate
	var holes [][]Coordinate

	if ob := poly.findFirst("outerBoundaryIs"); ob != nil {
		if lr := ob.findFirst("LinearRing"); lr != nil {
			outer = ringCoordinates(lr)
		}
	}

	// only the first LinearRing under each wrapper is consulted
	for _, ib := range poly.findAll("innerBoundaryIs") {
		lr := ib.findFirst("LinearRing")
		if lr == nil {
			continue
		}
		if coords := ringCoordinates(lr); len(coords) > 0 {
			holes = append(holes, coords)
		}
	}

	if len(outer) == 0 {
		if rings := poly.findAll("LinearRing"); len(rings) > 0 {
			outer = ringCoordinates(rings[0])
			for _, lr := range rings[1:] {
				if coords := ringCoordinates(lr); len(coords) > 0 {
					holes = append(holes, coords)
				}
			}
		}
	}

	if len(outer) == 0 {
		return Geometry{}, false
	}

	return Geometry{Type: TypePolygon, Coordinates: outer, Holes: holes}, true
}

// ringCoordinates parses the first coordinates element below el.
func ringCoordinates(el *element) []Coordinate {
	coords := el.findFirst("coordinates")
	if coords == nil {
		return nil
	}
	return parseCoordinates(coords.Text)
}

// textOf returns the trimmed character data of el, or "" when el is nil or
// holds only whitespace.
func textOf(el *element) string {
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text)
}
