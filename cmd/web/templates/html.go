// Package templates renders the studio pages and the fragments patched in
// over SSE.
package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// writer accumulates the first write error so components can emit markup
// without checking every call.
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) raw(s string) {
	if w.err == nil {
		_, w.err = io.WriteString(w.w, s)
	}
}

// printf writes format with args. Callers escape dynamic values with e.
func (w *writer) printf(format string, args ...any) {
	if w.err == nil {
		_, w.err = fmt.Fprintf(w.w, format, args...)
	}
}

func (w *writer) render(ctx context.Context, c templ.Component) {
	if w.err == nil {
		w.err = c.Render(ctx, w.w)
	}
}

func e(s string) string { return templ.EscapeString(s) }

func component(fn func(ctx context.Context, w *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		fn(ctx, w)
		return w.err
	})
}

func domID(parts ...string) string {
	return strings.NewReplacer(".", "-", " ", "-", "/", "-").Replace(strings.Join(parts, "-"))
}

// Empty renders nothing. Used with remove-mode patches.
func Empty() templ.Component {
	return component(func(context.Context, *writer) {})
}

// ErrorID is the element holding the last edit error.
const ErrorID = "studio-error"

// StudioError shows an edit error, or clears it when msg is empty.
func StudioError(msg string) templ.Component {
	return component(func(_ context.Context, w *writer) {
		if msg == "" {
			w.printf(`<div id="%s"></div>`, ErrorID)
			return
		}
		w.printf(`<div id="%s" class="border-2 border-red-400/60 text-red-300 text-xs font-mono p-2">%s</div>`, ErrorID, e(msg))
	})
}
