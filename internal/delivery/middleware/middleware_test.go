package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tracker/config"
	deliverycontext "tracker/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type seenRequest struct {
	echoID    string
	contextID string
	hasLogger bool
}

func newTestEcho(buf *bytes.Buffer, debug bool, seen *seenRequest) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/tracking", func(c echo.Context) error {
		seen.echoID = deliverycontext.RequestID(c)
		seen.contextID = deliverycontext.RequestIDFrom(c.Request().Context())
		seen.hasLogger = deliverycontext.Logger(c.Request().Context(), nil) != nil

		return c.NoContent(http.StatusNoContent)
	})

	return e
}

func TestRequestIDMiddleware_Generates(t *testing.T) {
	var buf bytes.Buffer
	var seen seenRequest
	e := newTestEcho(&buf, false, &seen)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tracking", nil))

	id := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, seen.echoID)
	assert.Equal(t, id, seen.contextID)
	assert.True(t, seen.hasLogger)
	assert.Empty(t, buf.String(), "request logging is off outside debug")
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	var buf bytes.Buffer
	var seen seenRequest
	e := newTestEcho(&buf, true, &seen)

	req := httptest.NewRequest(http.MethodGet, "/tracking", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-123", seen.contextID)
	assert.Contains(t, buf.String(), "request_id=req-123")
	assert.Contains(t, buf.String(), "route=/tracking")
	assert.Contains(t, buf.String(), "status=204")
}
