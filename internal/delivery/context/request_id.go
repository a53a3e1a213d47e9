// Package context carries request-scoped values shared by the HTTP API and
// the milestone worker.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	keyRequestID contextKey = "request_id"
	keyLogger    contextKey = "logger"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// Scope stores requestID and a logger tagged with it in ctx. The derived
// logger is returned for immediate use.
func Scope(ctx context.Context, requestID string, base *slog.Logger) (context.Context, *slog.Logger) {
	logger := base.With(slog.String("request_id", requestID))
	ctx = context.WithValue(ctx, keyRequestID, requestID)
	ctx = context.WithValue(ctx, keyLogger, logger)

	return ctx, logger
}

// RequestIDFrom returns the request ID stored by Scope, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// Logger returns the logger stored by Scope, or fallback outside a request.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// RequestID returns the ID of an echo request. Responses rendered outside the
// request ID middleware get a fresh one.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(string(keyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID records the ID on the echo context for response metadata.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}
