// Package geo handles GeoJSON documents and their property values.
package geo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ErrMalformed is wrapped by every error caused by a document that does not
// follow the feature collection structure.
var ErrMalformed = errors.New("malformed geojson")

// FeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature represents a single geographic feature with geometry and properties.
// Geometry is nil when the source feature carries a null geometry.
type Feature struct {
	Geometry   *geojson.Geometry `json:"geometry"`
	Type       string            `json:"type"`
	Properties Properties        `json:"properties"`
}

// Decode reads a feature collection from r.
func Decode(r io.Reader) (*FeatureCollection, error) {
	var doc struct {
		Type     string     `json:"type"`
		Features *[]Feature `json:"features"`
	}

	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, ErrMalformed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if doc.Features == nil {
		return nil, fmt.Errorf("%w: missing features", ErrMalformed)
	}

	return &FeatureCollection{Type: doc.Type, Features: *doc.Features}, nil
}

// Point returns the longitude and latitude of a Point geometry.
// ok is false for any other geometry type.
func (f *Feature) Point() (lon, lat float64, ok bool) {
	if f.Geometry == nil || f.Geometry.Type != "Point" {
		return 0, 0, false
	}

	p, ok := f.Geometry.Coordinates.(orb.Point)
	if !ok {
		return 0, 0, false
	}

	return p.Lon(), p.Lat(), true
}

// UnmarshalJSON decodes a feature, checking Point coordinates before the
// geometry is handed to orb.
func (f *Feature) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type       string          `json:"type"`
		Geometry   json.RawMessage `json:"geometry"`
		Properties Properties      `json:"properties"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	geometry, err := decodeGeometry(raw.Geometry)
	if err != nil {
		return err
	}

	f.Type = raw.Type
	f.Geometry = geometry
	f.Properties = raw.Properties
	return nil
}

var geometryTypes = map[string]bool{
	"Point":              true,
	"MultiPoint":         true,
	"LineString":         true,
	"MultiLineString":    true,
	"Polygon":            true,
	"MultiPolygon":       true,
	"GeometryCollection": true,
}

func decodeGeometry(data json.RawMessage) (*geojson.Geometry, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	var head struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("%w: geometry: %w", ErrMalformed, err)
	}

	if !geometryTypes[head.Type] {
		return nil, fmt.Errorf("%w: unknown geometry type %q", ErrMalformed, head.Type)
	}

	// orb accepts a null coordinate array as the zero point
	if head.Type == "Point" {
		var coords []float64
		if err := json.Unmarshal(head.Coordinates, &coords); err != nil || len(coords) < 2 {
			return nil, fmt.Errorf("%w: point requires [longitude, latitude] coordinates", ErrMalformed)
		}
	}

	g := &geojson.Geometry{}
	if err := g.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("%w: geometry: %w", ErrMalformed, err)
	}

	return g, nil
}
