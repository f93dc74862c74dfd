package templates

import (
	"context"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"thirdcoast.systems/studio/cmd/web/viewtypes"
	"thirdcoast.systems/studio/pkg/overlay"
	"thirdcoast.systems/studio/pkg/panel"
	"thirdcoast.systems/studio/pkg/sparse"
	"thirdcoast.systems/studio/pkg/transform"
	"thirdcoast.systems/studio/pkg/utils/format"
)

// OverlayPanelID is the element id of the overlay list.
const OverlayPanelID = "overlay-panel"

var titleCase = cases.Title(language.English)

// OverlayLabel is the button and card title for an overlay variant.
func OverlayLabel(kind transform.OverlayKind) string {
	return titleCase.String(string(kind)) + " Overlay"
}

// overlayTiming summarises when a video overlay is shown, or "" when it
// spans the whole clip.
func overlayTiming(fields sparse.Section) string {
	start, _ := fields["startOffset"].(float64)
	end, _ := fields["endOffset"].(float64)
	dur, _ := fields["duration"].(float64)
	switch {
	case dur > 0:
		return format.Duration(start) + " +" + format.Duration(dur)
	case end > 0:
		return format.Duration(start) + " to " + format.Duration(end)
	case start > 0:
		return "from " + format.Duration(start)
	}
	return ""
}

// OverlayPanel renders the editing buffer of the overlay list.
func OverlayPanel(workspaceID string, surface transform.Surface, items []overlay.Item) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.printf(`<section id="%s" class="%s flex flex-col gap-3">`, OverlayPanelID, viewtypes.InfoBoxClass)
		w.printf(`<div class="flex items-center justify-between"><h2 class="%s">Overlays</h2><button class="%s" data-on:click="%s">Reset All</button></div>`,
			viewtypes.SubHeading, viewtypes.GhostButtonSm, e(PostExpr(OverlayResetURL(workspaceID))))

		w.raw(`<div class="flex flex-wrap gap-2">`)
		for _, kind := range panel.OverlayKinds(surface) {
			w.printf(`<button class="%s" data-on:click="%s">+ %s</button>`,
				viewtypes.GhostButtonSm, e(PostExpr(OverlayAddURL(workspaceID, string(kind)))), e(titleCase.String(string(kind))))
		}
		w.raw(`</div>`)
		if overlay.ModeFor(surface) == overlay.ReplaceAll {
			w.printf(`<p class="%s">Adding an overlay replaces the current one.</p>`, viewtypes.HelpClass)
		}

		if len(items) == 0 {
			w.printf(`<p class="%s">No overlays.</p>`, viewtypes.SectionLabel)
		}
		for _, it := range items {
			kind := it.Kind()
			w.printf(`<div id="%s" class="border-2 border-white/10 p-3 flex flex-col gap-3">`, e(domID("overlay", it.ID)))
			w.printf(`<div class="flex items-center justify-between"><span class="%s">%s`, viewtypes.SectionLabel, e(OverlayLabel(kind)))
			if t := overlayTiming(it.Fields); t != "" {
				w.printf(` <span class="text-white/60 normal-case">%s</span>`, e(t))
			}
			w.printf(`</span><button class="%s" data-on:click="%s">Remove</button></div>`,
				viewtypes.DangerButtonSm, e(DeleteExpr(OverlayItemURL(workspaceID, it.ID))))
			for _, f := range panel.OverlayFields(surface, kind) {
				cur, has := f.Current(it.Fields)
				renderField(ctx, w, fieldView{
					ID:        domID("o", it.ID, f.Key),
					ActionURL: OverlayFieldURL(workspaceID, it.ID, f.Key),
					Field:     f,
					Value:     cur,
					Has:       has,
				})
			}
			w.raw(`</div>`)
		}
		w.raw(`</section>`)
	})
}
