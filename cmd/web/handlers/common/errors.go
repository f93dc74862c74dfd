package common

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/studio/internal/studio"
	"thirdcoast.systems/studio/pkg/panel"
)

// ErrBadRequest returns a 400 Bad Request error.
func ErrBadRequest(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, msg)
}

// ErrNotFound returns a 404 Not Found error.
func ErrNotFound(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound, msg)
}

// ErrInternal returns a 500 Internal Server Error.
func ErrInternal(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError, msg)
}

// StudioError maps a service error to its HTTP status. Unknown panels,
// fields, groups and overlays are 404s; input the panels reject is a 400;
// anything else is a 500.
func StudioError(err error) *echo.HTTPError {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, studio.ErrNotFound):
		return ErrNotFound("workspace not found")
	case errors.Is(err, panel.ErrUnknownPanel),
		errors.Is(err, panel.ErrUnknownField),
		errors.Is(err, panel.ErrUnknownGroup),
		errors.Is(err, studio.ErrUnknownOverlay):
		return ErrNotFound(err.Error())
	case errors.Is(err, studio.ErrSurfaceMismatch),
		errors.Is(err, studio.ErrUnsupportedKind),
		errors.Is(err, studio.ErrInvalidSurface),
		errors.Is(err, studio.ErrInvalidDescriptor):
		return ErrBadRequest(err.Error())
	default:
		return ErrInternal("internal error")
	}
}
