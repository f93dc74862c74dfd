package studio_api

import (
	"github.com/labstack/echo/v4"
	"thirdcoast.systems/studio/cmd/web/handlers/common"
	"thirdcoast.systems/studio/internal/studio"
)

// HandleFieldUpdate applies one section panel control edit. The raw value
// arrives in the _value signal.
func HandleFieldUpdate(svc *studio.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}
		raw, err := readValue(c)
		if err != nil {
			return err
		}

		panelName := c.Param("panel")
		ws, err := svc.UpdateField(c.Request().Context(), id, panelName, c.Param("key"), raw)
		if err != nil {
			return fail(c, err)
		}
		return respondPanel(c, ws, panelName)
	}
}
