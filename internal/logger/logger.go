package logger

import (
	"os"
	"sync"
)

// Names accepted by log.level and --log-level.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	server     *Logger
	serverOnce sync.Once
)

// Get returns the server's shared logger on stdout. Only the first level
// passed is honoured.
func Get(level string) *Logger {
	serverOnce.Do(func() {
		server = New(level)
	})
	return server
}

// New returns an unshared stdout logger.
func New(level string) *Logger {
	return build(level, os.Stdout)
}

// NewStderr returns an unshared stderr logger; heatsim writes CSV to stdout.
func NewStderr(level string) *Logger {
	return build(level, os.Stderr)
}
