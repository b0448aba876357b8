package service

import (
	"io"
	"strings"
	"time"

	"github.com/phuslu/log"

	"inbot/internal/logging"
)

func testLogger() *log.Logger {
	return logging.New(io.Discard, time.UTC, "error")
}

func body(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}
