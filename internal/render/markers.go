package render

import (
	"html"
	"strings"

	"github.com/woozymasta/podesmap/internal/config"
	"github.com/woozymasta/podesmap/internal/dataset"
)

// Marker is a map overlay placed at a coordinate with an HTML popup.
type Marker struct {
	Popup string  `json:"popup"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// BuildMarkers returns one marker per row that carries both coordinates.
// Rows without a position are left out of the map only.
func BuildMarkers(t *dataset.Table, d config.Dashboard) []Marker {
	f := NewFormatter(d.Locale, d.Placeholder)

	markers := make([]Marker, 0, t.Len())
	for _, row := range t.Rows {
		lon, lat, ok := row.Coordinates()
		if !ok {
			continue
		}

		markers = append(markers, Marker{
			Lat:   lat,
			Lon:   lon,
			Popup: Popup(row, d, f),
		})
	}

	return markers
}

// Popup builds the marker summary: the region name followed by every
// configured count, missing fields replaced by the placeholder.
func Popup(row dataset.Row, d config.Dashboard, f Formatter) string {
	var b strings.Builder
	b.WriteString("<b>")
	b.WriteString(html.EscapeString(regionName(row, d)))
	b.WriteString("</b>")

	for _, pf := range d.PopupFields {
		v, ok := row.Get(pf.Field)
		b.WriteString("<br>")
		b.WriteString(html.EscapeString(pf.Label))
		b.WriteString(": ")
		b.WriteString(html.EscapeString(f.Count(v, ok)))
	}

	return b.String()
}
