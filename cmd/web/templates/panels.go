package templates

import (
	"context"

	"github.com/a-h/templ"
	"thirdcoast.systems/studio/cmd/web/viewtypes"
	"thirdcoast.systems/studio/pkg/panel"
	"thirdcoast.systems/studio/pkg/sparse"
)

// PanelID is the element id a section panel renders under.
func PanelID(name string) string { return "panel-" + name }

// Panel renders a section panel for the current value of its slot. Fields
// whose condition does not hold are left out.
func Panel(workspaceID string, p *panel.Panel, slot sparse.Section) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.printf(`<section id="%s" class="%s flex flex-col gap-3">`, e(PanelID(p.Name)), viewtypes.InfoBoxClass)
		w.printf(`<div class="flex items-center justify-between"><h2 class="%s">%s</h2><button class="%s" data-on:click="%s">Reset All</button></div>`,
			viewtypes.SubHeading, e(p.Title), viewtypes.GhostButtonSm, e(PostExpr(PanelResetURL(workspaceID, p.Name))))

		for _, g := range p.Groups {
			w.printf(`<details open class="border-t border-white/10 pt-2"><summary class="flex items-center justify-between cursor-pointer"><span class="%s">%s</span><button class="%s" data-on:click="%s">Reset</button></summary>`,
				viewtypes.SectionLabel, e(g.Title), viewtypes.GhostButtonSm, e(PostExpr(GroupResetURL(workspaceID, p.Name, g.Name))))
			w.raw(`<div class="flex flex-col gap-3 mt-2">`)
			for _, f := range g.Fields {
				if !p.Visible(f, slot) {
					continue
				}
				cur, has := p.Value(f, slot)
				renderField(ctx, w, fieldView{
					ID:        domID("f", p.Name, f.Key),
					ActionURL: FieldActionURL(workspaceID, p.Name, f.Key),
					Field:     f,
					Value:     cur,
					Has:       has,
				})
			}
			w.raw(`</div></details>`)
		}
		w.raw(`</section>`)
	})
}
