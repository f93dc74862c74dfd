package templates

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"thirdcoast.systems/studio/internal/studio"
	"thirdcoast.systems/studio/pkg/overlay"
	"thirdcoast.systems/studio/pkg/panel"
	"thirdcoast.systems/studio/pkg/sparse"
	"thirdcoast.systems/studio/pkg/transform"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestURLs(t *testing.T) {
	require.Equal(t, "/api/studio/ws/panels/ai-magic/fields/background.remove", FieldActionURL("ws", panel.NameAIMagic, "background.remove"))
	require.Equal(t, "/api/studio/ws/panels/audio/groups/basic/reset", GroupResetURL("ws", "audio", "basic"))
	require.Equal(t, "/api/studio/ws/overlays/add/text", OverlayAddURL("ws", "text"))
	require.Equal(t, "/api/studio/ws/overlays/a%20b", OverlayItemURL("ws", "a b"))
	require.Equal(t, "/api/studio/ws/preview/stream", PreviewStreamURL("ws"))
}

func TestExpressions(t *testing.T) {
	require.Equal(t, "$_value=evt.target.value; @post('/x',{filterSignals:{include:/^_value$/}})", ValueExpr("/x"))
	require.Contains(t, CheckedExpr("/x"), "evt.target.checked")
	require.Contains(t, DeleteExpr("/x"), "@delete('/x'")
	require.Contains(t, SliderReadoutExpr(2), "toFixed(2)")
}

func TestDomID(t *testing.T) {
	require.Equal(t, "f-ai-magic-background-remove", domID("f", "ai-magic", "background.remove"))
}

func TestPanel_HidesConditionalFields(t *testing.T) {
	p, err := panel.Lookup(panel.NameAIMagic)
	require.NoError(t, err)
	promptURL := FieldActionURL("ws", panel.NameAIMagic, "background.generativeFill.prompt")

	off := render(t, Panel("ws", p, sparse.Section{}))
	require.Contains(t, off, `id="panel-ai-magic"`)
	require.Contains(t, off, "Reset All")
	require.NotContains(t, off, promptURL)

	on := render(t, Panel("ws", p, sparse.Section{"background": sparse.Section{"generativeFill": sparse.Section{}}}))
	require.Contains(t, on, promptURL)
	require.Contains(t, on, "checked")
}

func TestPanel_RendersHelpMarkdown(t *testing.T) {
	p, err := panel.Lookup(panel.NameAIMagic)
	require.NoError(t, err)
	html := render(t, Panel("ws", p, sparse.Section{}))
	require.Contains(t, html, "<strong>generated</strong>")
}

func TestOverlayPanel(t *testing.T) {
	empty := render(t, OverlayPanel("ws", transform.SurfaceImage, nil))
	require.Contains(t, empty, `id="overlay-panel"`)
	require.Contains(t, empty, "No overlays.")
	require.Contains(t, empty, "replaces the current one")

	items := []overlay.Item{{ID: "o1", Fields: sparse.Section{"type": "text", "text": "hello"}}}
	html := render(t, OverlayPanel("ws", transform.SurfaceVideo, items))
	require.Contains(t, html, "Text Overlay")
	require.Contains(t, html, `id="overlay-o1"`)
	require.Contains(t, html, "/api/studio/ws/overlays/o1")
	require.NotContains(t, html, "replaces the current one")
}

func TestOverlayPanel_OpenEndedNumberBounds(t *testing.T) {
	items := []overlay.Item{{ID: "o1", Fields: sparse.Section{"type": "solid", "width": 100.0, "opacity": 100.0}}}
	html := render(t, OverlayPanel("ws", transform.SurfaceVideo, items))
	require.Contains(t, html, `min="0" max="100"`)
	require.Contains(t, html, `min="0" step=`)
	require.NotContains(t, html, "Inf")
}

func TestOverlayTiming(t *testing.T) {
	require.Equal(t, "", overlayTiming(sparse.Section{"startOffset": 0.0}))
	require.Equal(t, "0:05 +0:10", overlayTiming(sparse.Section{"startOffset": 5.0, "duration": 10.0}))
	require.Equal(t, "0:05 to 1:00", overlayTiming(sparse.Section{"startOffset": 5.0, "endOffset": 60.0}))
	require.Equal(t, "from 0:02.5", overlayTiming(sparse.Section{"startOffset": 2.5}))
}

func TestOverlayLabel(t *testing.T) {
	require.Equal(t, "Gradient Overlay", OverlayLabel("gradient"))
}

func TestDescriptorPreview(t *testing.T) {
	html := render(t, DescriptorPreview(sparse.Section{"mute": true}))
	require.Contains(t, html, `id="descriptor-preview"`)
	require.Contains(t, html, "&#34;mute&#34;: true")

	require.Contains(t, render(t, DescriptorPreviewJSON([]byte("not json"))), "{}")
}

func TestStudioPage(t *testing.T) {
	ws := studio.Workspace{
		ID:         uuid.MustParse("11111111-2222-3333-4444-555555555555"),
		Name:       "Launch <clip>",
		Surface:    transform.SurfaceVideo,
		Descriptor: sparse.Section{},
	}
	html := render(t, StudioPage(ws, nil))
	require.Contains(t, html, "<!DOCTYPE html>")
	require.Contains(t, html, "Launch &lt;clip&gt;")
	require.Contains(t, html, DatastarScript)
	require.Contains(t, html, "/api/studio/11111111-2222-3333-4444-555555555555/preview/stream")
	require.Contains(t, html, "/descriptor?download=1")
	for _, p := range panel.ForSurface(transform.SurfaceVideo) {
		require.Contains(t, html, `id="`+PanelID(p.Name)+`"`)
	}
}

func TestHomePage(t *testing.T) {
	require.Contains(t, render(t, HomePage(nil)), "No workspaces yet.")

	ws := studio.Workspace{ID: uuid.New(), Name: "Poster", Surface: transform.SurfaceImage, UpdatedAt: time.Now().Add(-2 * time.Hour)}
	html := render(t, HomePage([]studio.Workspace{ws}))
	require.Contains(t, html, "/studio/"+ws.ID.String())
	require.Contains(t, html, "2 hours ago")
}

func TestStudioError(t *testing.T) {
	require.Equal(t, `<div id="studio-error"></div>`, render(t, StudioError("")))
	require.Contains(t, render(t, StudioError("bad <value>")), "bad &lt;value&gt;")
}
