package content

import (
	"github.com/labstack/echo/v4"
	"thirdcoast.systems/studio/cmd/web/handlers/common"
	"thirdcoast.systems/studio/cmd/web/templates"
	"thirdcoast.systems/studio/internal/studio"
)

func HandleHomePage(svc *studio.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := svc.List(c.Request().Context())
		if err != nil {
			return common.StudioError(err)
		}
		return templates.HomePage(list).Render(c.Request().Context(), c.Response())
	}
}
