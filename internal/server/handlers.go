// Package server handles HTTP requests and middleware.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/woozymasta/podesmap/internal/dashboard"
	"github.com/woozymasta/podesmap/internal/dataset"
)

const etagCap = 64

// HandleIndex runs the whole pipeline and serves the report page.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && strings.Contains(r.URL.Path, ".") {
		http.NotFound(w, r)
		return
	}

	view, err := dashboard.Build(s.DataPath, s.Config.Dashboard)
	if err != nil {
		log.Error().Err(err).Str("path", s.DataPath).Msg("Failed to build report")
		http.Error(w, "report unavailable: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := s.Page.Write(&buf, view); err != nil {
		log.Error().Err(err).Msg("Failed to render page")
		http.Error(w, "report unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if view.Error != "" {
		w.WriteHeader(http.StatusNotFound)
	}
	_, _ = w.Write(buf.Bytes())
}

// HandleRows serves the flattened table as JSON.
func (s *ServerContext) HandleRows(w http.ResponseWriter, r *http.Request) {
	table, err := dataset.Load(s.DataPath)
	if err != nil {
		var missing *dataset.MissingResourceError
		if errors.As(err, &missing) {
			writeJSON(w, http.StatusNotFound, map[string]string{
				"error": s.Config.Dashboard.MissingText(missing.Path),
			})
			return
		}

		log.Error().Err(err).Str("path", s.DataPath).Msg("Failed to load dataset")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, table)
}

// HandleGeoJSON serves the input document unchanged.
func (s *ServerContext) HandleGeoJSON(w http.ResponseWriter, r *http.Request) {
	if !s.serveFile(w, r, s.DataPath, "application/geo+json") {
		http.NotFound(w, r)
	}
}

// HandleFavicon serves the site favicon.
func (s *ServerContext) HandleFavicon(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/favicon.ico" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(s.Favicon)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(v)
}

// serveFile tries to serve a file from disk with ETag generation.
// It returns true if the file was found and served (or 304).
func (s *ServerContext) serveFile(w http.ResponseWriter, r *http.Request, path string, contentType string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return false
	}

	buf := make([]byte, 0, etagCap)
	buf = append(buf, '"')
	buf = strconv.AppendInt(buf, info.Size(), 16)
	buf = append(buf, '-')
	buf = strconv.AppendInt(buf, info.ModTime().UnixNano(), 16)
	buf = append(buf, '"')
	etag := string(buf)

	// check If-None-Match (client sent ETag)
	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}

	http.ServeFile(w, r, path)
	return true
}
