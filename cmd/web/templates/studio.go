package templates

import (
	"context"
	"encoding/json"

	"github.com/a-h/templ"
	"thirdcoast.systems/studio/cmd/web/viewtypes"
	"thirdcoast.systems/studio/internal/studio"
	"thirdcoast.systems/studio/pkg/overlay"
	"thirdcoast.systems/studio/pkg/panel"
	"thirdcoast.systems/studio/pkg/sparse"
	"thirdcoast.systems/studio/pkg/transform"
)

// PreviewID is the element id of the descriptor preview.
const PreviewID = "descriptor-preview"

// DescriptorPreview shows the canonical descriptor as indented JSON.
func DescriptorPreview(desc sparse.Section) templ.Component {
	return component(func(_ context.Context, w *writer) {
		body, err := json.MarshalIndent(desc, "", "  ")
		if err != nil {
			body = []byte("{}")
		}
		w.printf(`<pre id="%s" class="%s">%s</pre>`, PreviewID, viewtypes.PreviewClass, e(string(body)))
	})
}

// DescriptorPreviewJSON renders the preview from an already encoded
// descriptor, as received from the preview stream.
func DescriptorPreviewJSON(raw []byte) templ.Component {
	var desc sparse.Section
	if err := json.Unmarshal(raw, &desc); err != nil {
		desc = sparse.Section{}
	}
	return DescriptorPreview(desc)
}

// StudioPage renders the editor for one workspace.
func StudioPage(ws studio.Workspace, items []overlay.Item) templ.Component {
	id := ws.ID.String()
	body := component(func(ctx context.Context, w *writer) {
		w.printf(`<div class="flex items-baseline gap-3 mb-4"><h1 class="%s">%s</h1><span class="%s">%s</span></div>`,
			viewtypes.PageHeading, e(ws.Name), viewtypes.SectionLabel, e(string(ws.Surface)))
		w.render(ctx, StudioError(""))
		w.raw(`<div class="grid grid-cols-1 lg:grid-cols-3 gap-4 mt-4"><div class="lg:col-span-2 flex flex-col gap-4">`)
		for _, p := range panel.ForSurface(ws.Surface) {
			w.render(ctx, Panel(id, p, transform.SlotSection(ws.Descriptor, p.Slot)))
		}
		w.render(ctx, OverlayPanel(id, ws.Surface, items))
		w.printf(`</div><aside class="flex flex-col gap-2" data-init="%s"><div class="flex items-center justify-between"><span class="%s">Descriptor</span><a class="%s" href="%s">Export</a></div>`,
			e("@get('"+PreviewStreamURL(id)+"')"), viewtypes.SectionLabel, viewtypes.GhostButtonSm, e(DescriptorDownloadURL(id)))
		w.render(ctx, DescriptorPreview(ws.Descriptor))
		w.raw(`</aside></div>`)
	})
	return Page(ws.Name+" | Studio", body)
}
