// Package dashboard runs the report pipeline: load, flatten and render.
package dashboard

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/woozymasta/podesmap/internal/config"
	"github.com/woozymasta/podesmap/internal/dataset"
	"github.com/woozymasta/podesmap/internal/render"
)

// Build loads the feature collection at path and renders the page view.
// A missing file is not an error: the view then carries only the message
// for the user. Any other failure aborts the whole report.
func Build(path string, d config.Dashboard) (*render.View, error) {
	start := time.Now()

	table, err := dataset.Load(path)
	if err != nil {
		var missing *dataset.MissingResourceError
		if errors.As(err, &missing) {
			log.Error().Str("path", missing.Path).Msg("Input file not found, report not rendered")
			return render.MissingView(d, missing.Path), nil
		}
		return nil, err
	}

	view, err := render.NewView(table, d)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("path", path).
		Int("rows", table.Len()).
		Int("markers", len(view.Map.Markers)).
		Dur("duration", time.Since(start)).
		Msg("Report rendered")

	return view, nil
}
