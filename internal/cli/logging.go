package cli

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// newLogger builds a logger writing to w at the configured level and format.
func newLogger(w io.Writer, cfg Config) (*log.Logger, error) {
	logger := log.New()
	logger.SetOutput(w)

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	logger.SetLevel(level)

	switch cfg.LogFormat {
	case "", "text":
		logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		return nil, fmt.Errorf("%w: unknown log format %q", ErrBadConfig, cfg.LogFormat)
	}

	return logger, nil
}
