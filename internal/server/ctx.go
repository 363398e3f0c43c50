package server

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/woozymasta/podesmap/assets"
	"github.com/woozymasta/podesmap/internal/config"
	"github.com/woozymasta/podesmap/internal/render"
)

// ServerContext holds dependencies for request handlers.
// Nothing derived from the input file is kept between requests.
type ServerContext struct {
	Config   *config.Config
	Page     *render.Page
	DataPath string
	Favicon  []byte
}

// NewServerContext prepares the page renderer for the given input file.
func NewServerContext(cfg *config.Config, dataPath string) (*ServerContext, error) {
	page, err := render.NewPage()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(dataPath); err != nil {
		log.Warn().
			Err(err).
			Str("path", dataPath).
			Msg("Input file is not readable yet, pages will show the missing file message")
	}

	log.Info().
		Str("path", dataPath).
		Str("region_field", cfg.Dashboard.RegionField).
		Int("popup_fields", len(cfg.Dashboard.PopupFields)).
		Msg("Server context initialized successfully")

	return &ServerContext{
		Config:   cfg,
		Page:     page,
		DataPath: dataPath,
		Favicon:  assets.Favicon,
	}, nil
}
