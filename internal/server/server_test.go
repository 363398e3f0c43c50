package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/podesmap/internal/config"
	"github.com/woozymasta/podesmap/internal/server"
)

const doc = `{"type": "FeatureCollection", "features": [
	{"type": "Feature", "geometry": {"type": "Point", "coordinates": [118.0, -2.5]},
	 "properties": {"provinsi": "Kalimantan Timur", "total_lembaga": 10}}
]}`

func newHandler(t *testing.T, content string) (http.Handler, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "map.geojson")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	srv, err := server.NewServerContext(config.Default(), path)
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/rows", srv.HandleRows)
	mux.HandleFunc("/map.geojson", srv.HandleGeoJSON)
	mux.HandleFunc("/favicon.ico", srv.HandleFavicon)
	mux.HandleFunc("/", srv.HandleIndex)

	return server.RequestLogger(mux), path
}

func get(h http.Handler, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	h, _ := newHandler(t, doc)

	rec := get(h, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Kalimantan Timur")
	assert.Contains(t, rec.Body.String(), config.Default().Dashboard.MapHeading)
}

func TestIndexMissingFile(t *testing.T) {
	h, _ := newHandler(t, "")

	rec := get(h, "/", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "tidak ditemukan")
	assert.NotContains(t, rec.Body.String(), config.Default().Dashboard.MapHeading)
}

func TestIndexMalformedFile(t *testing.T) {
	h, _ := newHandler(t, `{"type": "FeatureCollection"}`)

	rec := get(h, "/", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestIndexRejectsFilePaths(t *testing.T) {
	h, _ := newHandler(t, doc)

	rec := get(h, "/style.css", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRows(t *testing.T) {
	h, _ := newHandler(t, doc)

	rec := get(h, "/api/rows", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"columns": ["provinsi", "total_lembaga", "longitude", "latitude"],
		"rows": [{"provinsi": "Kalimantan Timur", "total_lembaga": 10, "longitude": 118, "latitude": -2.5}]
	}`, rec.Body.String())
}

func TestRowsMissingFile(t *testing.T) {
	h, _ := newHandler(t, "")

	rec := get(h, "/api/rows", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "tidak ditemukan")
}

func TestGeoJSON(t *testing.T) {
	h, _ := newHandler(t, doc)

	rec := get(h, "/map.geojson", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/geo+json", rec.Header().Get("Content-Type"))
	assert.Equal(t, doc, rec.Body.String())

	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	rec = get(h, "/map.geojson", http.Header{"If-None-Match": []string{etag}})
	assert.Equal(t, http.StatusNotModified, rec.Code)
}

func TestGeoJSONMissingFile(t *testing.T) {
	h, _ := newHandler(t, "")

	rec := get(h, "/map.geojson", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFavicon(t *testing.T) {
	h, _ := newHandler(t, doc)

	rec := get(h, "/favicon.ico", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")
}
