package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/woozymasta/podesmap/internal/config"
	"github.com/woozymasta/podesmap/internal/dataset"
	"github.com/woozymasta/podesmap/internal/logger"
	"github.com/woozymasta/podesmap/internal/render"
	"github.com/woozymasta/podesmap/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	GeoJSON    string `short:"g" long:"geojson" env:"GEOJSON_FILE"   description:"Path to the feature collection" default:"map.geojson"`
	ConfigFile string `short:"c" long:"config"  env:"CONFIG_FILE"    description:"Path to configuration file (built-in defaults when empty)"`
	Addr       string `short:"a" long:"addr"    env:"LISTEN_ADDRESS" description:"Address to listen on" default:"0.0.0.0"`
	Port       int    `short:"p" long:"port"    env:"LISTEN_PORT"    description:"Port to listen on"    default:"8501"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Setup Logging
	opts.Logger.Setup()

	// Load Config
	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
	}

	// Startup pass: a missing file keeps the server up with the message,
	// anything else is fatal
	table, err := dataset.Load(opts.GeoJSON)
	var missing *dataset.MissingResourceError
	switch {
	case errors.As(err, &missing):
		log.Error().Str("path", missing.Path).Msg(cfg.Dashboard.MissingText(missing.Path))
	case err != nil:
		log.Fatal().Err(err).Str("path", opts.GeoJSON).Msg("Failed to load dataset")
	default:
		if _, err := render.NewView(table, cfg.Dashboard); err != nil {
			log.Fatal().Err(err).Msg("Failed to render report")
		}
		log.Info().
			Int("rows", table.Len()).
			Int("columns", len(table.Columns)).
			Int("markers", len(table.WithCoordinates())).
			Msg("Dataset loaded")
	}

	srvCtx, err := server.NewServerContext(cfg, opts.GeoJSON)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	// Routes
	mux := http.NewServeMux()
	mux.HandleFunc("/api/rows", srvCtx.HandleRows)
	mux.HandleFunc("/map.geojson", srvCtx.HandleGeoJSON)
	mux.HandleFunc("/favicon.ico", srvCtx.HandleFavicon)
	mux.HandleFunc("/", srvCtx.HandleIndex)

	handler := server.RequestLogger(mux)

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	log.Info().
		Str("addr", listenAddr).
		Str("geojson", opts.GeoJSON).
		Msg("Web server started")

	if err := http.ListenAndServe(listenAddr, handler); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
