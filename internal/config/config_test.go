package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/podesmap/internal/config"
)

func TestDefault(t *testing.T) {
	d := config.Default().Dashboard

	assert.Equal(t, "provinsi", d.RegionField)
	assert.Equal(t, "-", d.Placeholder)
	assert.Equal(t, [2]float64{-2.5, 118}, d.Map.Center)
	assert.Equal(t, 5, d.Map.Zoom)
	assert.Len(t, d.PopupFields, 9)
	assert.Equal(t, "total_lembaga", d.BarChart.Field)
	assert.Equal(t, "tidak_ada", d.PieChart.Field)
}

func TestLoadKeepsDefaultsForUnsetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dashboard:
  title: Custom report
  map:
    zoom: 7
    center: [-6.2, 106.8]
  bar_chart:
    field: komputer
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	d := cfg.Dashboard
	assert.Equal(t, "Custom report", d.Title)
	assert.Equal(t, 7, d.Map.Zoom)
	assert.Equal(t, [2]float64{-6.2, 106.8}, d.Map.Center)
	assert.Equal(t, "komputer", d.BarChart.Field)

	def := config.Default().Dashboard
	assert.Equal(t, def.Byline, d.Byline)
	assert.Equal(t, def.Map.Tiles, d.Map.Tiles)
	assert.Equal(t, def.BarChart.Title, d.BarChart.Title)
	assert.Equal(t, def.PopupFields, d.PopupFields)
	assert.Equal(t, 0.7, d.Map.FillOpacity)
}

func TestLoadKeepsExplicitZeroView(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dashboard:
  title: "   "
  map:
    zoom: 0
    center: [0, 0]
    width: -1
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	d := cfg.Dashboard
	def := config.Default().Dashboard
	assert.Equal(t, 0, d.Map.Zoom)
	assert.Equal(t, [2]float64{0, 0}, d.Map.Center)
	assert.Equal(t, def.Map.Width, d.Map.Width)
	assert.Equal(t, def.Title, d.Title)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dashboard: [unclosed"), 0o644))
	_, err = config.Load(path)
	assert.Error(t, err)
}

func TestMissingText(t *testing.T) {
	d := config.Default().Dashboard
	assert.Equal(t,
		"File `data/map.geojson` tidak ditemukan! Pastikan file berada di folder yang sama dengan program.",
		d.MissingText("data/map.geojson"))
}
