// Package config handles dashboard configuration loading and defaults.
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	Dashboard Dashboard `yaml:"dashboard"`
}

// Dashboard describes page texts and the fields read from each row.
type Dashboard struct {
	Title         string `yaml:"title,omitempty"`
	Byline        string `yaml:"byline,omitempty"`
	TableHeading  string `yaml:"table_heading,omitempty"`
	MapHeading    string `yaml:"map_heading,omitempty"`
	ChartsHeading string `yaml:"charts_heading,omitempty"`
	Footer        string `yaml:"footer,omitempty"`

	// MissingMessage is shown instead of the report when the input file is
	// absent; {path} is replaced with the configured file name.
	MissingMessage string `yaml:"missing_message,omitempty"`

	RegionField   string `yaml:"region_field,omitempty"`
	UnknownRegion string `yaml:"unknown_region,omitempty"`
	Placeholder   string `yaml:"placeholder,omitempty"`
	NoData        string `yaml:"no_data,omitempty"`
	Locale        string `yaml:"locale,omitempty"` // number grouping

	PopupFields []PopupField `yaml:"popup_fields,omitempty"`
	Map         Map          `yaml:"map,omitempty"`
	BarChart    Chart        `yaml:"bar_chart,omitempty"`
	PieChart    Chart        `yaml:"pie_chart,omitempty"`
}

// PopupField is one labelled count in the marker popup.
type PopupField struct {
	Field string `yaml:"field"`
	Label string `yaml:"label"`
}

// Map holds the marker map options.
type Map struct {
	Tiles        string     `yaml:"tiles,omitempty"`
	Attribution  string     `yaml:"attribution,omitempty"`
	MarkerColor  string     `yaml:"marker_color,omitempty"`
	Center       [2]float64 `yaml:"center,flow"` // [lat, lon]
	Zoom         int        `yaml:"zoom"`
	Width        int        `yaml:"width,omitempty"`
	Height       int        `yaml:"height,omitempty"`
	MarkerRadius int        `yaml:"marker_radius,omitempty"`
	FillOpacity  float64    `yaml:"fill_opacity,omitempty"`
}

// Chart describes one comparison chart.
type Chart struct {
	Field      string `yaml:"field,omitempty"`
	Title      string `yaml:"title,omitempty"`
	ValueLabel string `yaml:"value_label,omitempty"`
	Width      int    `yaml:"width,omitempty"`
	Height     int    `yaml:"height,omitempty"`
}

// Default returns the configuration of the PODES skill-institution report.
func Default() *Config {
	return &Config{Dashboard: Dashboard{
		Title:          "Analisis Potensi Desa di Indonesia",
		Byline:         "Sumber data: BPS - Potensi Desa (PODES) | Visualisasi oleh Fridha Megantara Putra",
		TableHeading:   "Data Potensi Desa per Provinsi",
		MapHeading:     "Peta Sebaran Lembaga Keterampilan",
		ChartsHeading:  "Analisis EDA Potensi Desa",
		Footer:         "Analisis ini menampilkan persebaran lembaga keterampilan di seluruh provinsi Indonesia, lengkap dengan peta interaktif dan visualisasi perbandingan.",
		MissingMessage: "File `{path}` tidak ditemukan! Pastikan file berada di folder yang sama dengan program.",
		RegionField:    "provinsi",
		UnknownRegion:  "Tidak diketahui",
		Placeholder:    "-",
		NoData:         "Tidak ada data",
		Locale:         "en",
		PopupFields: []PopupField{
			{Field: "total_lembaga", Label: "Total Lembaga"},
			{Field: "bahasa_asing", Label: "Bahasa Asing"},
			{Field: "komputer", Label: "Komputer"},
			{Field: "menjahit", Label: "Menjahit"},
			{Field: "kecantikan", Label: "Kecantikan"},
			{Field: "montir", Label: "Montir"},
			{Field: "elektronika", Label: "Elektronika"},
			{Field: "lainnya", Label: "Lainnya"},
			{Field: "tidak_ada", Label: "Tidak Ada"},
		},
		Map: Map{
			Tiles:        "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png",
			Attribution:  "&copy; OpenStreetMap contributors &copy; CARTO",
			Center:       [2]float64{-2.5, 118},
			Zoom:         5,
			Width:        1100,
			Height:       550,
			MarkerRadius: 7,
			MarkerColor:  "blue",
			FillOpacity:  0.7,
		},
		BarChart: Chart{
			Field:      "total_lembaga",
			Title:      "Jumlah Total Lembaga Keterampilan per Provinsi",
			ValueLabel: "Jumlah Lembaga",
			Width:      640,
			Height:     480,
		},
		PieChart: Chart{
			Field:  "tidak_ada",
			Title:  "Distribusi Provinsi Tanpa Lembaga Keterampilan",
			Width:  640,
			Height: 480,
		},
	}}
}

// Load reads and parses the YAML configuration file from the specified path.
// The file is decoded over Default, so keys absent from it keep their
// defaults and explicit zero values such as zoom 0 are kept.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize replaces blank texts and out-of-range sizes with defaults.
// Zoom and center accept zero.
func (c *Config) Normalize() {
	def := Default().Dashboard
	d := &c.Dashboard

	setString(&d.Title, def.Title)
	setString(&d.Byline, def.Byline)
	setString(&d.TableHeading, def.TableHeading)
	setString(&d.MapHeading, def.MapHeading)
	setString(&d.ChartsHeading, def.ChartsHeading)
	setString(&d.Footer, def.Footer)
	setString(&d.MissingMessage, def.MissingMessage)
	setString(&d.RegionField, def.RegionField)
	setString(&d.UnknownRegion, def.UnknownRegion)
	setString(&d.Placeholder, def.Placeholder)
	setString(&d.NoData, def.NoData)
	setString(&d.Locale, def.Locale)

	if len(d.PopupFields) == 0 {
		d.PopupFields = def.PopupFields
	}

	setString(&d.Map.Tiles, def.Map.Tiles)
	setString(&d.Map.Attribution, def.Map.Attribution)
	setString(&d.Map.MarkerColor, def.Map.MarkerColor)
	if d.Map.Zoom < 0 {
		d.Map.Zoom = def.Map.Zoom
	}
	setInt(&d.Map.Width, def.Map.Width)
	setInt(&d.Map.Height, def.Map.Height)
	setInt(&d.Map.MarkerRadius, def.Map.MarkerRadius)
	if d.Map.FillOpacity <= 0 || d.Map.FillOpacity > 1 {
		d.Map.FillOpacity = def.Map.FillOpacity
	}

	normalizeChart(&d.BarChart, def.BarChart)
	normalizeChart(&d.PieChart, def.PieChart)
}

// MissingText renders the missing-file message for path.
func (d Dashboard) MissingText(path string) string {
	return strings.ReplaceAll(d.MissingMessage, "{path}", path)
}

func normalizeChart(c *Chart, def Chart) {
	setString(&c.Field, def.Field)
	setString(&c.Title, def.Title)
	setString(&c.ValueLabel, def.ValueLabel)
	setInt(&c.Width, def.Width)
	setInt(&c.Height, def.Height)
}

func setString(dst *string, def string) {
	if strings.TrimSpace(*dst) == "" {
		*dst = def
	}
}

func setInt(dst *int, def int) {
	if *dst <= 0 {
		*dst = def
	}
}
