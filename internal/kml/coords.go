package kml

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Coordinate is a single position in lon/lat order with an optional
// altitude. KML coordinate text carries longitude first, the opposite of
// the GPS "lat,lon" convention.
type Coordinate struct {
	Lon    float64
	Lat    float64
	Alt    float64
	HasAlt bool
}

// MarshalJSON encodes the coordinate as a [lon, lat] or [lon, lat, alt]
// position array.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.position())
}

// MarshalYAML encodes the coordinate the same way as MarshalJSON.
func (c Coordinate) MarshalYAML() (interface{}, error) {
	return c.position(), nil
}

func (c Coordinate) position() []float64 {
	if c.HasAlt {
		return []float64{c.Lon, c.Lat, c.Alt}
	}
	return []float64{c.Lon, c.Lat}
}

// parseCoordinates splits KML coordinates text into positions. Tokens are
// whitespace-separated "lon,lat[,alt]" tuples; a token that is too short or
// fails to parse is skipped, so one truncated tuple does not lose the rest
// of the sequence. Real-world exports truncate these blocks routinely.
func parseCoordinates(text string) []Coordinate {
	var coords []Coordinate

	for _, token := range strings.Fields(text) {
		comps := strings.Split(token, ",")
		if len(comps) < 2 {
			continue
		}

		lon, err := strconv.ParseFloat(comps[0], 64)
		if err != nil {
			continue
		}
		lat, err := strconv.ParseFloat(comps[1], 64)
		if err != nil {
			continue
		}

		c := Coordinate{Lon: lon, Lat: lat}
		if len(comps) >= 3 && comps[2] != "" {
			alt, err := strconv.ParseFloat(comps[2], 64)
			if err != nil {
				// lenient per token, not per field
				continue
			}
			c.Alt = alt
			c.HasAlt = true
		}

		coords = append(coords, c)
	}

	return coords
}
