package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		level     zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		SetupLoggerTo(tt.verbosity, &bytes.Buffer{})
		assert.Equal(t, tt.level, zerolog.GlobalLevel(), "verbosity %d", tt.verbosity)
	}
}

func TestGetLoggerComponent(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerTo(0, &buf)

	logger := GetLogger("props")
	logger.Warn().Msg("resource missing")

	out := buf.String()
	assert.Contains(t, out, "props")
	assert.Contains(t, out, "resource missing")
}

func TestBelowLevelSuppressed(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerTo(0, &buf)

	logger := GetLogger("props")
	logger.Info().Msg("should not appear")

	assert.NotContains(t, buf.String(), "should not appear")
}
