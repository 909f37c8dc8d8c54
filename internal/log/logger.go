// Package log wraps log/slog with a per-component field.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Common field names.
const (
	FieldComponent = "component"
	FieldDate      = "date"
	FieldFood      = "food"
	FieldCalories  = "calories"
	FieldTotal     = "total"
	FieldKey       = "key"
	FieldPath      = "path"
	FieldError     = "error"
)

// Component names.
const (
	ComponentApp     = "app"
	ComponentStorage = "storage"
	ComponentDiary   = "diary"
	ComponentConfig  = "config"
)

// Logger wraps slog.Logger and stamps every record with its component.
type Logger struct {
	*slog.Logger
	base      *slog.Logger
	component string
}

// Config holds logger configuration.
type Config struct {
	Level     slog.Level
	Component string
	Output    io.Writer
}

// DefaultConfig logs warnings and above to stderr.
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelWarn,
		Component: ComponentApp,
		Output:    os.Stderr,
	}
}

// New creates a text logger from cfg.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	base := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.Level}))
	return &Logger{
		Logger:    base.With(FieldComponent, cfg.Component),
		base:      base,
		component: cfg.Component,
	}
}

// Nop returns a logger that drops everything. Used while the TUI owns the screen.
func Nop() *Logger {
	return New(Config{Level: slog.LevelError + 1, Component: ComponentApp, Output: io.Discard})
}

// WithComponent returns a child logger for another component.
func (l *Logger) WithComponent(component string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{
		Logger:    l.base.With(FieldComponent, component),
		base:      l.base,
		component: component,
	}
}

// Component returns the logger's component name.
func (l *Logger) Component() string {
	return l.component
}

// OrNop returns l, or a discarding logger when l is nil.
func (l *Logger) OrNop() *Logger {
	if l == nil {
		return Nop()
	}
	return l
}
