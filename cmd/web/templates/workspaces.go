package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
	"thirdcoast.systems/studio/cmd/web/viewtypes"
	"thirdcoast.systems/studio/internal/studio"
	"thirdcoast.systems/studio/pkg/utils/format"
)

// HomePage lists workspaces and offers a form to start a new one.
func HomePage(list []studio.Workspace) templ.Component {
	body := component(func(_ context.Context, w *writer) {
		w.printf(`<form method="post" action="/workspaces" class="%s flex flex-wrap items-end gap-3 mb-6">`, viewtypes.InfoBoxClass)
		w.printf(`<label class="flex flex-col gap-1"><span class="%s">Name</span><input name="name" class="%s" placeholder="Untitled"></label>`,
			viewtypes.SectionLabel, viewtypes.InputClass)
		w.printf(`<label class="flex flex-col gap-1"><span class="%s">Surface</span><select name="surface" class="%s"><option value="image">Image</option><option value="video">Video</option></select></label>`,
			viewtypes.SectionLabel, viewtypes.InputClass)
		w.printf(`<button type="submit" class="%s">Create</button></form>`, viewtypes.GhostButtonSm)

		if len(list) == 0 {
			w.printf(`<p class="%s">No workspaces yet.</p>`, viewtypes.SectionLabel)
			return
		}
		w.raw(`<table class="w-full text-sm font-mono"><thead><tr class="text-left text-white/40"><th>Name</th><th>Surface</th><th>Updated</th></tr></thead><tbody>`)
		for _, ws := range list {
			w.printf(`<tr class="border-t border-white/10"><td class="py-1"><a class="underline" href="/studio/%s" title="%s">%s</a></td><td>%s</td><td title="%s">%s</td></tr>`,
				ws.ID.String(), e(ws.Name), e(format.Truncate(ws.Name, 48)), e(string(ws.Surface)),
				e(ws.UpdatedAt.Format("2006-01-02 15:04:05 MST")), e(humanize.Time(ws.UpdatedAt)))
		}
		w.raw(`</tbody></table>`)
	})
	return Page("Studio", body)
}
