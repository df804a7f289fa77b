// Package context carries request-scoped values (request id, logger) from the
// transport edge down to the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// NewRequestID returns a fresh random request ID.
func NewRequestID() string {
	return uuid.NewString()
}

// GetRequestID extracts the request ID from ctx, or "" when none is set.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// EnsureRequestID reuses candidate, then any ID already on ctx, and generates
// one otherwise. The returned context carries the ID and a logger tagged with it
// unless ctx already had a request-scoped logger.
func EnsureRequestID(ctx context.Context, candidate string, logger *slog.Logger) (context.Context, string) {
	requestID := candidate
	if requestID == "" {
		requestID = GetRequestID(ctx)
	}
	if requestID == "" {
		requestID = NewRequestID()
	}

	ctx = WithRequestID(ctx, requestID)
	if GetLogger(ctx) == nil && logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("request_id", requestID)))
	}

	return ctx, requestID
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
