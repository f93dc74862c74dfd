// Package static embeds the stylesheet the studio pages load on top of the
// utility classes.
package static

import "embed"

//go:embed dist
var FS embed.FS
