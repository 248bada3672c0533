// Package ctxlog provides a context key for safely passing a slog.Logger
// instance through context.Context, plus the extra "success" level that
// sections use to announce a completed performance.
package ctxlog

import (
	"context"
	"log/slog"
)

// LevelSuccess sits between INFO and WARN. It is emitted by sections when a
// performance completes and is rendered as "SUCCESS".
const LevelSuccess = slog.LevelInfo + 2

// key is an unexported type to prevent collisions with context keys from other packages.
type key struct{}

// loggerKey is the key for the slog.Logger in a context.Context.
var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the slog.Logger from a context. If no logger is
// found, it returns the default global logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// Success logs msg at LevelSuccess.
func Success(ctx context.Context, logger *slog.Logger, msg string, args ...any) {
	logger.Log(ctx, LevelSuccess, msg, args...)
}

// ReplaceLevel is a slog.HandlerOptions.ReplaceAttr hook that prints
// LevelSuccess as "SUCCESS" instead of "INFO+2".
func ReplaceLevel(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelSuccess {
		a.Value = slog.StringValue("SUCCESS")
	}
	return a
}
