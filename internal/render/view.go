package render

import (
	"html/template"

	"github.com/woozymasta/podesmap/internal/config"
	"github.com/woozymasta/podesmap/internal/dataset"
)

// View is everything the page shows, in display order.
// A non-empty Error replaces the report below the byline.
type View struct {
	Title         string
	Byline        string
	Error         string
	TableHeading  string
	MapHeading    string
	ChartsHeading string
	Footer        string
	BarChart      template.HTML
	PieChart      template.HTML
	Table         TableView
	Map           MapView
}

// MapView is handed to the page script as JSON.
type MapView struct {
	Tiles       string     `json:"tiles"`
	Attribution string     `json:"attribution"`
	Color       string     `json:"color"`
	Markers     []Marker   `json:"markers"`
	Center      [2]float64 `json:"center"`
	Zoom        int        `json:"zoom"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	Radius      int        `json:"radius"`
	FillOpacity float64    `json:"fill_opacity"`
}

// NewView renders the table three ways: rows, markers and charts.
func NewView(t *dataset.Table, d config.Dashboard) (*View, error) {
	bar, err := BarChart(t, d)
	if err != nil {
		return nil, err
	}

	pie, err := PieChart(t, d)
	if err != nil {
		return nil, err
	}

	v := header(d)
	v.Table = BuildTable(t)
	v.BarChart = bar
	v.PieChart = pie
	v.Map = MapView{
		Tiles:       d.Map.Tiles,
		Attribution: d.Map.Attribution,
		Color:       d.Map.MarkerColor,
		Markers:     BuildMarkers(t, d),
		Center:      d.Map.Center,
		Zoom:        d.Map.Zoom,
		Width:       d.Map.Width,
		Height:      d.Map.Height,
		Radius:      d.Map.MarkerRadius,
		FillOpacity: d.Map.FillOpacity,
	}

	return v, nil
}

// MissingView shows only the page header and the missing-file message.
func MissingView(d config.Dashboard, path string) *View {
	v := header(d)
	v.Error = d.MissingText(path)
	return v
}

func header(d config.Dashboard) *View {
	return &View{
		Title:         d.Title,
		Byline:        d.Byline,
		TableHeading:  d.TableHeading,
		MapHeading:    d.MapHeading,
		ChartsHeading: d.ChartsHeading,
		Footer:        d.Footer,
	}
}
