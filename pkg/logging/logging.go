// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/exprtree/pkg/config/env"
	"github.com/natefinch/lumberjack"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	Level  slog.Level
	Format string
	// File, when set, receives the logs through a size-rotated writer in
	// addition to stderr.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

func LoadConfig() (Config, error) {
	level, err := ParseLevel(env.String("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}

	format := strings.ToLower(env.String("LOG_FORMAT", FormatText))
	if format != FormatText && format != FormatJSON {
		return Config{}, fmt.Errorf("invalid LOG_FORMAT: %q", format)
	}

	return Config{
		Level:      level,
		Format:     format,
		File:       os.Getenv("LOG_FILE"),
		MaxSizeMB:  10,
		MaxBackups: 3,
	}, nil
}

func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return l, nil
}

// Setup installs the default logger and returns a closer for the log file.
func Setup(cfg Config) (io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	if cfg.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			Compress:   true,
		}
		w = io.MultiWriter(os.Stderr, rotating)
		closer = rotating
	}

	slog.SetDefault(slog.New(NewHandler(w, cfg)))
	return closer, nil
}

func NewHandler(w io.Writer, cfg Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.Format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
