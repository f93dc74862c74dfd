package markdown

import (
	"bytes"
	"html"
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

var (
	bfRenderer = blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.Safelink | blackfriday.NofollowLinks | blackfriday.HrefTargetBlank | blackfriday.Smartypants | blackfriday.SmartypantsDashes,
	})
	bfExtensions = blackfriday.NoIntraEmphasis | blackfriday.Autolink | blackfriday.Strikethrough
	policy       = bluemonday.UGCPolicy()
	strict       = bluemonday.StrictPolicy()

	cache sync.Map // source -> *rendered
)

type rendered struct {
	html template.HTML
	text string
}

func render(source string) *rendered {
	if v, ok := cache.Load(source); ok {
		return v.(*rendered)
	}
	unsafe := blackfriday.Run([]byte(source),
		blackfriday.WithRenderer(bfRenderer),
		blackfriday.WithExtensions(bfExtensions),
	)
	r := &rendered{
		html: template.HTML(bytes.TrimSpace(policy.SanitizeBytes(unsafe))),
		text: html.UnescapeString(string(bytes.TrimSpace(strict.SanitizeBytes(unsafe)))),
	}
	v, _ := cache.LoadOrStore(source, r)
	return v.(*rendered)
}

// HTML renders control help text into sanitized HTML. Results are cached;
// help text comes from a fixed set of field descriptors.
func HTML(source string) template.HTML {
	if source == "" {
		return ""
	}
	return render(source).html
}

// PlainText renders help text with all markup removed.
func PlainText(source string) string {
	if source == "" {
		return ""
	}
	return render(source).text
}
