package studio_api

import (
	"github.com/labstack/echo/v4"
	"thirdcoast.systems/studio/cmd/web/auth"
	"thirdcoast.systems/studio/cmd/web/handlers/common"
	"thirdcoast.systems/studio/internal/studio"
	"thirdcoast.systems/studio/pkg/transform"
)

// HandleOverlayAdd adds a default overlay of the kind in the path.
func HandleOverlayAdd(sm *auth.SessionManager, svc *studio.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}
		client, err := common.RequireClientID(c, sm)
		if err != nil {
			return err
		}
		kind := transform.OverlayKind(c.Param("kind"))
		ws, items, err := svc.AddOverlay(c.Request().Context(), client, id, kind)
		if err != nil {
			return fail(c, err)
		}
		return respondOverlays(c, ws, items)
	}
}

// HandleOverlayField applies one overlay item control edit.
func HandleOverlayField(sm *auth.SessionManager, svc *studio.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}
		raw, err := readValue(c)
		if err != nil {
			return err
		}
		client, err := common.RequireClientID(c, sm)
		if err != nil {
			return err
		}
		ws, items, err := svc.UpdateOverlayField(c.Request().Context(), client, id, c.Param("item"), c.Param("key"), raw)
		if err != nil {
			return fail(c, err)
		}
		return respondOverlays(c, ws, items)
	}
}

// HandleOverlayRemove deletes one overlay item.
func HandleOverlayRemove(sm *auth.SessionManager, svc *studio.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}
		client, err := common.RequireClientID(c, sm)
		if err != nil {
			return err
		}
		ws, items, err := svc.RemoveOverlay(c.Request().Context(), client, id, c.Param("item"))
		if err != nil {
			return fail(c, err)
		}
		return respondOverlays(c, ws, items)
	}
}

// HandleOverlayReset clears the overlay list.
func HandleOverlayReset(sm *auth.SessionManager, svc *studio.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}
		client, err := common.RequireClientID(c, sm)
		if err != nil {
			return err
		}
		ws, items, err := svc.ResetOverlays(c.Request().Context(), client, id)
		if err != nil {
			return fail(c, err)
		}
		return respondOverlays(c, ws, items)
	}
}
