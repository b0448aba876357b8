// Package logging builds the JSON-lines logger shared by the server, the migrations and the CLI.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/phuslu/log"
)

// New returns a logger writing one JSON object per line to w.
// Timestamps are written under "ts" in the given location.
func New(w io.Writer, loc *time.Location, level string) *log.Logger {
	if w == nil {
		w = os.Stdout
	}
	if loc == nil {
		loc = time.UTC
	}
	lvl := log.ParseLevel(level)
	if level == "" {
		lvl = log.InfoLevel
	}
	return &log.Logger{
		Level:        lvl,
		TimeField:    "ts",
		TimeFormat:   time.RFC3339Nano,
		TimeLocation: loc,
		Writer:       &log.IOWriter{Writer: w},
	}
}

// Default writes info and above to stdout in UTC.
func Default() *log.Logger {
	return New(os.Stdout, time.UTC, "info")
}
