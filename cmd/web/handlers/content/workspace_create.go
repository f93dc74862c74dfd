package content

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/studio/cmd/web/handlers/common"
	"thirdcoast.systems/studio/internal/studio"
	"thirdcoast.systems/studio/pkg/transform"
)

// HandleWorkspaceCreate starts a workspace from the home page form and
// redirects to its studio page.
func HandleWorkspaceCreate(svc *studio.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		surface := transform.Surface(c.FormValue("surface"))
		ws, err := svc.Create(c.Request().Context(), c.FormValue("name"), surface)
		if err != nil {
			return common.StudioError(err)
		}
		slog.Info("workspace created", "workspace_id", ws.ID, "surface", ws.Surface)
		return c.Redirect(http.StatusSeeOther, "/studio/"+ws.ID.String())
	}
}
