package handler

import (
	"log/slog"

	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/delivery/http/response"
	domainerrors "tracker/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// fail logs a usecase failure on the request logger and renders it. Errors
// that are not AppErrors are left to the error middleware, which logs them.
func fail(c echo.Context, fallback *slog.Logger, op string, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		level := slog.LevelWarn
		if appErr.HTTPCode() >= 500 {
			level = slog.LevelError
		}
		deliverycontext.Logger(c.Request().Context(), fallback).LogAttrs(c.Request().Context(), level,
			"[HTTP] "+op+" failed",
			slog.String("code", appErr.ErrorCode()),
			slog.Any("error", err),
		)
	}

	return response.HandleAppError(c, err)
}
