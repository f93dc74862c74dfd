package templates

import (
	"context"

	"github.com/a-h/templ"
	"thirdcoast.systems/studio/cmd/web/viewtypes"
)

// DatastarScript is the client bundle the pages load.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"

// Stylesheet is served from the embedded static assets.
const Stylesheet = "/static/dist/studio.css"

// Page wraps body in the HTML document shell.
func Page(title string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw("<!DOCTYPE html>\n")
		w.printf(`<html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.printf(`<title>%s</title>`, e(title))
		w.printf(`<script src="https://cdn.tailwindcss.com"></script>`)
		w.printf(`<link rel="stylesheet" href="%s">`, Stylesheet)
		w.printf(`<script type="module" src="%s"></script>`, DatastarScript)
		w.printf(`</head><body class="bg-black text-white min-h-screen p-6">`)
		w.printf(`<header class="mb-6 flex items-center gap-4"><a href="/" class="%s">Studio</a></header>`, viewtypes.PageHeading)
		w.render(ctx, body)
		w.raw("</body></html>")
	})
}
