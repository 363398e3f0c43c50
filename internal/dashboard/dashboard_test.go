package dashboard_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/podesmap/internal/config"
	"github.com/woozymasta/podesmap/internal/dashboard"
	"github.com/woozymasta/podesmap/internal/geo"
)

func TestBuild(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.geojson")
	require.NoError(t, os.WriteFile(path, []byte(`{"type": "FeatureCollection", "features": [
		{"type": "Feature", "geometry": {"type": "Point", "coordinates": [118.0, -2.5]},
		 "properties": {"provinsi": "A", "total_lembaga": 10}},
		{"type": "Feature", "geometry": null, "properties": {"provinsi": "B"}}
	]}`), 0o644))

	d := config.Default().Dashboard
	view, err := dashboard.Build(path, d)
	require.NoError(t, err)

	assert.Empty(t, view.Error)
	assert.Len(t, view.Table.Rows, 2)
	require.Len(t, view.Map.Markers, 1)
	assert.Equal(t, -2.5, view.Map.Markers[0].Lat)
	assert.Equal(t, 118.0, view.Map.Markers[0].Lon)
	assert.Equal(t, [2]float64{-2.5, 118}, view.Map.Center)
	assert.Equal(t, 5, view.Map.Zoom)
	assert.NotEmpty(t, view.BarChart)
	assert.NotEmpty(t, view.PieChart)
}

func TestBuildMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.geojson")

	d := config.Default().Dashboard
	view, err := dashboard.Build(path, d)
	require.NoError(t, err)

	assert.Equal(t, d.MissingText(path), view.Error)
	assert.Empty(t, view.Table.Rows)
	assert.Empty(t, view.Map.Markers)
	assert.Empty(t, view.BarChart)
	assert.Empty(t, view.PieChart)
}

func TestBuildMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.geojson")
	require.NoError(t, os.WriteFile(path, []byte(`{"features": [{"geometry": {"type": "Point"}}]}`), 0o644))

	view, err := dashboard.Build(path, config.Default().Dashboard)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, geo.ErrMalformed)
}
