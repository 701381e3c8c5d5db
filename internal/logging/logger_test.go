package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithWriter(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("warn", "json", &buf)
	t.Cleanup(func() { InitWithWriter("info", "json", &bytes.Buffer{}) })

	log.Info().Msg("dropped")
	log.Warn().Str("building", "Foo Hall").Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, ServiceName, entry["service"])
	assert.Equal(t, "Foo Hall", entry["building"])
}

func TestContextLoggerFallsBackToGlobal(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("info", "json", &buf)
	t.Cleanup(func() { InitWithWriter("info", "json", &bytes.Buffer{}) })

	log.Ctx(context.Background()).Info().Msg("no request logger")
	assert.Contains(t, buf.String(), `"service":"amenitydb"`)
}

func TestInitBadLevelDefaultsToInfo(t *testing.T) {
	InitWithWriter("chatty", "console", &bytes.Buffer{})
	t.Cleanup(func() { InitWithWriter("info", "json", &bytes.Buffer{}) })
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestGormWriter(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("debug", "json", &buf)
	t.Cleanup(func() { InitWithWriter("info", "json", &bytes.Buffer{}) })

	w := gormWriter{logger: log.Logger, level: zerolog.DebugLevel}
	w.Printf("%s [rows:%d] %s\n", "1.2ms", 3, "SELECT 1")
	assert.Contains(t, buf.String(), `"message":"1.2ms [rows:3] SELECT 1"`)
	assert.Contains(t, buf.String(), `"level":"debug"`)
}
