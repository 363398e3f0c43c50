package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/podesmap/internal/logger"
)

func TestJSONFormat(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	l := logger.Logger{Level: "warn", Format: "json"}.New(&buf)

	l.Info().Msg("hidden")
	l.Warn().Str("path", "map.geojson").Msg("Input missing")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "map.geojson", entry["path"])
	assert.Equal(t, "Input missing", entry["message"])
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	l := logger.Logger{Level: "verbose", NoColor: true}.New(&buf)

	l.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	l.Info().Msg("Dashboard ready")
	assert.Contains(t, buf.String(), "Dashboard ready")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
