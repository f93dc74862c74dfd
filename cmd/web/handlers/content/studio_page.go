package content

import (
	"github.com/labstack/echo/v4"
	"thirdcoast.systems/studio/cmd/web/auth"
	"thirdcoast.systems/studio/cmd/web/handlers/common"
	"thirdcoast.systems/studio/cmd/web/templates"
	"thirdcoast.systems/studio/internal/studio"
)

// HandleStudioPage renders the editor. Loading the page mounts the overlay
// panel, which reseeds the client's editing buffer from the stored list.
func HandleStudioPage(sm *auth.SessionManager, svc *studio.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}
		client, err := common.RequireClientID(c, sm)
		if err != nil {
			return err
		}
		ctx := c.Request().Context()
		ws, err := svc.Get(ctx, id)
		if err != nil {
			return common.StudioError(err)
		}
		items, err := svc.MountOverlays(ctx, client, id)
		if err != nil {
			return common.StudioError(err)
		}
		return templates.StudioPage(ws, items).Render(ctx, c.Response())
	}
}
