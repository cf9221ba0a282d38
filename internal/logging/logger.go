// SPDX-License-Identifier: MIT

// Package logging builds the structured loggers used by the mxdemo driver.
//
// It is a thin layer over log/slog: a level parser, a text/JSON handler
// switch and a component tag, so every subsystem logs with the same shape.
// The matrix library itself never logs.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidLevel is returned by ParseLevel for unknown level names.
var ErrInvalidLevel = errors.New("logging: invalid level")

// ErrInvalidFormat is returned by New for unknown output formats.
var ErrInvalidFormat = errors.New("logging: invalid format")

// Options holds logger configuration.
type Options struct {
	Level     string    // debug, info, warn, error (default info)
	Format    string    // text or json (default text)
	Writer    io.Writer // default os.Stderr
	AddSource bool
}

// ParseLevel maps a case-insensitive level name onto slog.Level.
// "warning" is accepted as an alias of "warn".
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
	}
}

// New creates a *slog.Logger from opts.
func New(opts Options) (*slog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}

	hopts := &slog.HandlerOptions{Level: level, AddSource: opts.AddSource}

	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		handler = slog.NewTextHandler(out, hopts)
	case FormatJSON:
		handler = slog.NewJSONHandler(out, hopts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, opts.Format)
	}

	return slog.New(handler), nil
}

// WithComponent tags every record of l with component=name.
func WithComponent(l *slog.Logger, name string) *slog.Logger {
	return l.With(slog.String("component", name))
}

// Discard returns a logger that drops everything; handy for tests and quiet runs.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
