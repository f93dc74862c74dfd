package common

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"thirdcoast.systems/studio/cmd/web/auth"
)

// RequireUUIDParam extracts a UUID route parameter or returns a 400 error.
func RequireUUIDParam(c echo.Context, param string) (uuid.UUID, error) {
	u, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+param)
	}
	return u, nil
}

// RequireClientID returns the browser's client id, issuing one if needed.
func RequireClientID(c echo.Context, sm *auth.SessionManager) (string, error) {
	id, err := sm.ClientID(c.Response().Writer, c.Request())
	if err != nil {
		return "", echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
	}
	return id, nil
}
