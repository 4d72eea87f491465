// Package observability carries build-scoped logging context.
package observability

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/tagindex/internal/logfields"
)

// LogContext holds structured logging context information.
type LogContext struct {
	BuildID string
	Stage   string
}

type logContextKeyType string

const logContextKey logContextKeyType = "log-context"

// WithBuildID adds a build ID to the context.
func WithBuildID(ctx context.Context, buildID string) context.Context {
	lc := extractLogContext(ctx)
	lc.BuildID = buildID
	return context.WithValue(ctx, logContextKey, lc)
}

// WithStage adds a stage name to the context.
func WithStage(ctx context.Context, stage string) context.Context {
	lc := extractLogContext(ctx)
	lc.Stage = stage
	return context.WithValue(ctx, logContextKey, lc)
}

// GetContext returns the structured log context from the provided context.
func GetContext(ctx context.Context) LogContext {
	return extractLogContext(ctx)
}

func extractLogContext(ctx context.Context) LogContext {
	if lc, ok := ctx.Value(logContextKey).(LogContext); ok {
		return lc
	}
	return LogContext{}
}

func contextAttrs(ctx context.Context) []slog.Attr {
	lc := extractLogContext(ctx)
	attrs := make([]slog.Attr, 0, 2)
	if lc.BuildID != "" {
		attrs = append(attrs, logfields.BuildID(lc.BuildID))
	}
	if lc.Stage != "" {
		attrs = append(attrs, logfields.Stage(lc.Stage))
	}
	return attrs
}

// Logger emits records enriched with the build ID and stage stored in ctx.
type Logger struct {
	base *slog.Logger
}

// NewLogger wraps base. A nil base falls back to slog.Default at log time,
// so loggers created before the CLI configures logging still pick it up.
func NewLogger(base *slog.Logger) Logger {
	return Logger{base: base}
}

func (l Logger) logger() *slog.Logger {
	if l.base != nil {
		return l.base
	}
	return slog.Default()
}

func (l Logger) log(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr) {
	all := append(contextAttrs(ctx), attrs...)
	l.logger().LogAttrs(ctx, level, msg, all...)
}

// Info logs an info message with context information.
func (l Logger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelInfo, msg, attrs)
}

// Warn logs a warning message with context information.
func (l Logger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelWarn, msg, attrs)
}

// Error logs an error message with context information.
func (l Logger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelError, msg, attrs)
}

// Debug logs a debug message with context information.
func (l Logger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelDebug, msg, attrs)
}

// InfoContext logs an info message through slog.Default with context information.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Logger{}.Info(ctx, msg, attrs...)
}

// WarnContext logs a warning through slog.Default with context information.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Logger{}.Warn(ctx, msg, attrs...)
}
