// Package logger builds the zerolog logger shared by the server, the
// middleware and the upstream client.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/pageza/recipe-finder/backend/config"
)

// New returns the application logger. Development gets human readable
// console output, every other environment gets JSON lines on stdout.
func New(cfg *config.Config) (zerolog.Logger, error) {
	return NewWithWriter(os.Stdout, cfg.Log.Level, cfg.Environment.IsDevelopment())
}

// NewWithWriter returns a logger writing to w at the given level
func NewWithWriter(w io.Writer, level string, pretty bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Str("service", "recipe-finder").Logger(), nil
}
