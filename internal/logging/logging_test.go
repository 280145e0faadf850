package logging

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseLevel(tt.input), "level %q", tt.input)
	}
}

func TestLogFilePath(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	path := LogFilePath("logs", "battleapi", start)

	assert.True(t, strings.HasSuffix(path, "battleapi.20240301_123000.log"))
	assert.True(t, strings.HasPrefix(path, "logs"))
}

func TestSetupWritesToFile(t *testing.T) {
	var buf strings.Builder
	log := Setup(Options{Level: "debug", LogFile: &buf})

	log.Info().Str("component", "test").Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "component=test")
}
