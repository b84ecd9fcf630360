package kml

import (
	"encoding/json"
	"testing"
)

func TestCoordinateJSONPositionArray(t *testing.T) {
	with, err := json.Marshal(Coordinate{Lon: 77.5, Lat: 12.9, Alt: 10, HasAlt: true})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(with) != "[77.5,12.9,10]" {
		t.Fatalf("got %s, want [77.5,12.9,10]", with)
	}

	without, err := json.Marshal(Coordinate{Lon: 77.5, Lat: 12.9})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(without) != "[77.5,12.9]" {
		t.Fatalf("got %s, want [77.5,12.9]", without)
	}
}

func TestPlacemarkJSONOmitsAbsentFields(t *testing.T) {
	data, err := json.Marshal(Placemark{Geometries: []Geometry{}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"geometries":[]}` {
		t.Fatalf("got %s", data)
	}
}
