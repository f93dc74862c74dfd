package studio_api

import (
	"github.com/labstack/echo/v4"
	"thirdcoast.systems/studio/cmd/web/handlers/common"
	"thirdcoast.systems/studio/internal/studio"
)

// HandleGroupReset clears the fields of one panel group.
func HandleGroupReset(svc *studio.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}
		panelName := c.Param("panel")
		ws, err := svc.ResetGroup(c.Request().Context(), id, panelName, c.Param("group"))
		if err != nil {
			return fail(c, err)
		}
		return respondPanel(c, ws, panelName)
	}
}

// HandlePanelReset clears every field a panel owns.
func HandlePanelReset(svc *studio.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}
		panelName := c.Param("panel")
		ws, err := svc.ResetPanel(c.Request().Context(), id, panelName)
		if err != nil {
			return fail(c, err)
		}
		return respondPanel(c, ws, panelName)
	}
}
