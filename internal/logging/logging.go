// Package logging configures the structured logger shared by the server, the LLM gateway and the CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Format selects the log output encoding
type Format string

const (
	// FormatJSON emits one JSON object per line (production)
	FormatJSON Format = "json"
	// FormatText emits human readable key=value lines (development)
	FormatText Format = "text"
)

// New creates a logger writing to stderr with the given level and format.
// Empty values fall back to "info" and "text".
func New(level string, format string) (*logrus.Logger, error) {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter creates a logger writing to out.
func NewWithWriter(out io.Writer, level string, format string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)

	switch Format(strings.ToLower(format)) {
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	case FormatText, "":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q (expected json or text)", format)
	}

	return logger, nil
}

// Discard returns a logger that drops every entry. Useful for tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
