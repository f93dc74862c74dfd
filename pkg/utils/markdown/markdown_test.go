package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTML_Empty(t *testing.T) {
	require.Equal(t, "", string(HTML("")))
	require.Equal(t, "", PlainText(""))
}

func TestHTML_Sanitizes(t *testing.T) {
	out := string(HTML("hello <script>alert(1)</script> **world**"))
	require.NotContains(t, strings.ToLower(out), "<script")
	require.Contains(t, out, "<strong>world</strong>")

	// caching path
	require.Equal(t, out, string(HTML("hello <script>alert(1)</script> **world**")))
}

func TestHTML_Code(t *testing.T) {
	out := string(HTML("Seconds into the video, e.g. `4.5`."))
	require.Contains(t, out, "<code>4.5</code>")
}

func TestPlainText(t *testing.T) {
	text := PlainText("Extends the canvas with **generated** content & more")
	require.Equal(t, "Extends the canvas with generated content & more", text)
}
