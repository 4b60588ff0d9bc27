// Package logging builds the zerolog logger shared by the command line tool
// and the development server.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

type Settings struct {
	Level  string `mapstructure:"level" json:"level" yaml:"level"`
	Format string `mapstructure:"format" json:"format" yaml:"format"`
}

// ParseLevel maps a level name to a zerolog level. An empty name is info.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return zerolog.InfoLevel, nil
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("logging: unknown level %q", name)
	}
}

// New returns a logger writing to stderr.
func New(settings Settings) (zerolog.Logger, error) {
	return NewWriter(os.Stderr, settings)
}

// NewWriter returns a logger writing to w, human readable for the console
// format and one JSON object per line otherwise.
func NewWriter(w io.Writer, settings Settings) (zerolog.Logger, error) {
	level, err := ParseLevel(settings.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	switch strings.ToLower(strings.TrimSpace(settings.Format)) {
	case "", FormatConsole:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("logging: unknown format %q", settings.Format)
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
