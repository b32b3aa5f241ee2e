package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

type Config struct {
	// Diagnostics written to stderr; stdout carries only the document.
	LogLevel  string
	LogFormat string
}

func Load() Config {
	return Config{
		LogLevel:  strings.ToLower(envOr("TREEJSON_LOG_LEVEL", "warn")),
		LogFormat: strings.ToLower(envOr("TREEJSON_LOG_FORMAT", "text")),
	}
}

func (c Config) Validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q (want text or json)", ErrInvalidLogFormat, c.LogFormat)
	}
	return nil
}

// NewLogger builds a logger writing to w at the configured level and format
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.level()
	if err != nil {
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (c Config) level() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q (want debug, info, warn or error)", ErrInvalidLogLevel, c.LogLevel)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
