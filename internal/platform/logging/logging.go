// Package logging builds the process-wide structured logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format names supported handler encodings.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config selects the handler format and minimum level.
type Config struct {
	Level  string `env:"ADREACH_WEB_LOG_LEVEL" envDefault:"info"`
	Format string `env:"ADREACH_WEB_LOG_FORMAT" envDefault:"text"`
}

// SlogLevel maps the configured level name onto a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.Level)
	}
}

// SlogFormat returns the normalized handler format.
func (c Config) SlogFormat() (string, error) {
	switch strings.ToLower(strings.TrimSpace(c.Format)) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown log format %q", c.Format)
	}
}

// New builds a logger writing to out.
func New(out io.Writer, cfg Config) (*slog.Logger, error) {
	if out == nil {
		return nil, fmt.Errorf("log output is required")
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	format, err := cfg.SlogFormat()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	return slog.New(handler), nil
}

// Install builds a logger and makes it the slog default.
func Install(out io.Writer, cfg Config) (*slog.Logger, error) {
	logger, err := New(out, cfg)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}
