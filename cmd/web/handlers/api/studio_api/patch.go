// Package studio_api serves the panel and overlay edits of the studio page.
// Every mutation answers with datastar element patches for the panel it
// touched and the descriptor preview.
package studio_api

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
	"thirdcoast.systems/studio/cmd/web/handlers/common"
	"thirdcoast.systems/studio/cmd/web/templates"
	"thirdcoast.systems/studio/internal/studio"
	"thirdcoast.systems/studio/pkg/overlay"
	"thirdcoast.systems/studio/pkg/panel"
	"thirdcoast.systems/studio/pkg/transform"
	"thirdcoast.systems/studio/pkg/utils/format"
)

// valueSignals carries the single control value. Checkboxes post a bool,
// everything else a string.
type valueSignals struct {
	Value any `json:"_value"`
}

// readValue must run before the SSE writer is created.
func readValue(c echo.Context) (string, error) {
	signals := &valueSignals{}
	if err := datastar.ReadSignals(c.Request(), signals); err != nil {
		slog.Warn("failed to read studio signals", "path", c.Path(), "error", err)
		return "", common.ErrBadRequest("invalid signals")
	}
	return format.Value(signals.Value), nil
}

// fail reports err. Rejected input is shown inline over SSE so the page
// keeps working; everything else becomes a plain HTTP error.
func fail(c echo.Context, err error) error {
	httpErr := common.StudioError(err)
	if httpErr.Code != http.StatusBadRequest {
		if httpErr.Code >= http.StatusInternalServerError {
			slog.Error("studio edit failed", "path", c.Path(), "error", err)
		}
		return httpErr
	}
	sse := datastar.NewSSE(c.Response().Writer, c.Request())
	_ = sse.PatchElementTempl(templates.StudioError(err.Error()), datastar.WithSelectorID(templates.ErrorID), datastar.WithModeReplace())
	return nil
}

func patchPreview(sse *datastar.ServerSentEventGenerator, ws studio.Workspace) {
	_ = sse.PatchElementTempl(templates.StudioError(""), datastar.WithSelectorID(templates.ErrorID), datastar.WithModeReplace())
	_ = sse.PatchElementTempl(templates.DescriptorPreview(ws.Descriptor), datastar.WithSelectorID(templates.PreviewID), datastar.WithModeReplace())
}

// respondPanel re-renders the whole panel: an edit can change which fields
// are visible.
func respondPanel(c echo.Context, ws studio.Workspace, panelName string) error {
	p, err := panel.Lookup(panelName)
	if err != nil {
		return common.StudioError(err)
	}
	sse := datastar.NewSSE(c.Response().Writer, c.Request())
	_ = sse.PatchElementTempl(
		templates.Panel(ws.ID.String(), p, transform.SlotSection(ws.Descriptor, p.Slot)),
		datastar.WithSelectorID(templates.PanelID(p.Name)),
		datastar.WithModeReplace(),
	)
	patchPreview(sse, ws)
	return nil
}

func respondOverlays(c echo.Context, ws studio.Workspace, items []overlay.Item) error {
	sse := datastar.NewSSE(c.Response().Writer, c.Request())
	_ = sse.PatchElementTempl(
		templates.OverlayPanel(ws.ID.String(), ws.Surface, items),
		datastar.WithSelectorID(templates.OverlayPanelID),
		datastar.WithModeReplace(),
	)
	patchPreview(sse, ws)
	return nil
}
