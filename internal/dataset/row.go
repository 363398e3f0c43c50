// Package dataset flattens GeoJSON features into display rows.
package dataset

import (
	"encoding/json"

	"github.com/woozymasta/podesmap/internal/geo"
)

// Field names injected into rows built from Point features.
const (
	FieldLongitude = "longitude"
	FieldLatitude  = "latitude"
)

// Row is the flattened form of one feature: its properties in source order,
// followed by longitude and latitude for Point geometries.
type Row struct {
	fields geo.Properties
}

// NewRow builds a row from an ordered field list.
func NewRow(fields ...geo.Field) Row {
	return Row{fields: geo.Properties(fields).Clone()}
}

// Fields returns a copy of the row fields in order.
func (r Row) Fields() []geo.Field {
	return r.fields.Clone()
}

// Len returns the number of fields present in the row.
func (r Row) Len() int {
	return len(r.fields)
}

// Get returns the raw value of a field.
func (r Row) Get(name string) (geo.Value, bool) {
	return r.fields.Get(name)
}

// Has reports whether the field is present.
func (r Row) Has(name string) bool {
	_, ok := r.fields.Get(name)
	return ok
}

// Int returns an integer field.
func (r Row) Int(name string) (int64, bool) {
	v, ok := r.fields.Get(name)
	if !ok {
		return 0, false
	}
	return v.AsInt()
}

// Number returns a numeric field as float64, accepting integers and floats.
func (r Row) Number(name string) (float64, bool) {
	v, ok := r.fields.Get(name)
	if !ok {
		return 0, false
	}
	return v.AsFloat()
}

// Text returns a string field.
func (r Row) Text(name string) (string, bool) {
	v, ok := r.fields.Get(name)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// Coordinates returns the injected position. ok is false unless both
// longitude and latitude are present and numeric.
func (r Row) Coordinates() (lon, lat float64, ok bool) {
	lon, okLon := r.Number(FieldLongitude)
	lat, okLat := r.Number(FieldLatitude)
	if !okLon || !okLat {
		return 0, 0, false
	}
	return lon, lat, true
}

// MarshalJSON encodes the row as an object in field order.
func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.fields)
}

// MarshalYAML encodes the row as a mapping in field order.
func (r Row) MarshalYAML() (any, error) {
	return r.fields.MarshalYAML()
}

func rowFromFeature(f *geo.Feature) Row {
	fields := f.Properties.Clone()
	if fields == nil {
		fields = geo.Properties{}
	}

	if lon, lat, ok := f.Point(); ok {
		fields.Set(FieldLongitude, geo.Float(lon))
		fields.Set(FieldLatitude, geo.Float(lat))
	}

	return Row{fields: fields}
}
