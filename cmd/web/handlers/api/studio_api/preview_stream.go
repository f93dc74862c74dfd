package studio_api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
	"thirdcoast.systems/studio/cmd/web/handlers/common"
	"thirdcoast.systems/studio/cmd/web/templates"
	"thirdcoast.systems/studio/internal/studio"
)

const keepAliveInterval = 15 * time.Second

// HandlePreviewStream keeps the descriptor preview current: every save of
// the workspace, from any client or instance, is patched in.
func HandlePreviewStream(svc *studio.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}
		ws, err := svc.Get(c.Request().Context(), id)
		if err != nil {
			return common.StudioError(err)
		}

		updates, unsubscribe := svc.Subscribe(id)
		defer unsubscribe()

		resp := c.Response()
		flusher, ok := resp.Writer.(http.Flusher)
		if !ok {
			return c.String(500, "streaming unsupported")
		}

		common.SetSSEHeaders(c)
		sse := datastar.NewSSE(resp, c.Request())
		_ = sse.PatchElementTempl(templates.DescriptorPreview(ws.Descriptor), datastar.WithSelectorID(templates.PreviewID), datastar.WithModeReplace())

		ticker := time.NewTicker(keepAliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-c.Request().Context().Done():
				return nil
			case data, ok := <-updates:
				if !ok {
					return nil
				}
				if err := sse.PatchElementTempl(templates.DescriptorPreviewJSON(data), datastar.WithSelectorID(templates.PreviewID), datastar.WithModeReplace()); err != nil {
					return nil
				}
			case <-ticker.C:
				if _, err := fmt.Fprintf(resp, ": keep-alive\n\n"); err != nil {
					return nil
				}
				flusher.Flush()
			}
		}
	}
}
