// Package logging sets up the zerolog logger used across the backend:
// console output, an optional session log file, and an optional GELF
// (Graylog) sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/rs/zerolog"
)

// ParseLevel converts a string log level to a zerolog level, defaulting
// to info on anything unrecognized.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// LogFilePath builds a log file path using OS-appropriate path separators.
func LogFilePath(logsDir, serviceName string, sessionStart time.Time) string {
	return filepath.Join(
		logsDir,
		fmt.Sprintf("%s.%s.log", serviceName, sessionStart.Format("20060102_150405")),
	)
}

// Options configures Setup.
type Options struct {
	Level       string
	LogFile     io.Writer // optional session log file
	GelfAddress string    // optional Graylog UDP address
}

// Setup builds the process logger. Console output is colorized; the
// file writer gets the same format without colors; GELF output, when
// configured, receives the raw JSON events.
func Setup(opts Options) zerolog.Logger {
	zerolog.SetGlobalLevel(ParseLevel(opts.Level))
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	writers := []io.Writer{
		zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		},
	}
	if opts.LogFile != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        opts.LogFile,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
	}
	if opts.GelfAddress != "" {
		// A dead Graylog endpoint shouldn't take logging down with it.
		if gw, err := gelf.NewWriter(opts.GelfAddress); err == nil {
			writers = append(writers, gw)
		}
	}

	mlw := zerolog.MultiLevelWriter(writers...)
	return zerolog.New(mlw).With().Timestamp().Logger()
}
