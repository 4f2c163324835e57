package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/inovacc/gradients/internal/model"
)

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s)))); err != nil {
		return slog.LevelWarn, fmt.Errorf("unknown log level %q", s)
	}

	return level, nil
}

// NewLogger builds the application logger described by cfg.
func NewLogger(w io.Writer, cfg model.Config) *slog.Logger {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
