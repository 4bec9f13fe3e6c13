package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Run("console only", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(Config{Level: "info", NoColor: true, Out: &buf})
		assert.NotNil(t, logger)

		logger.Info().Str("platform", "linux-x64").Msg("resolved")
		assert.Contains(t, buf.String(), "resolved")
		assert.Contains(t, buf.String(), "linux-x64")
	})

	t.Run("with rotating file", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "logs", "install.log")

		var buf bytes.Buffer
		logger := NewLogger(Config{Level: "info", LogFile: logFile, NoColor: true, Out: &buf})
		logger.Info().Msg("staged")

		data, err := os.ReadFile(logFile)
		assert.NoError(t, err)
		assert.Contains(t, string(data), "staged")
	})

	t.Run("level filters console output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(Config{Level: "warn", NoColor: true, Out: &buf})

		logger.Info().Msg("hidden")
		logger.Warn().Msg("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"invalid", zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}

func TestNewTestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf)

	logger.Warn().Str("file", "claude-gate.ps1").Msg("could not remove")

	assert.Contains(t, buf.String(), "could not remove")
	assert.Contains(t, buf.String(), "claude-gate.ps1")
}
