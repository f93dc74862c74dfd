package sparse

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_NormalizesNestedObjects(t *testing.T) {
	s, err := Parse([]byte(`{"background":{"generativeFill":{"width":512}},"blur":3}`))
	require.NoError(t, err)
	require.Equal(t, Section{
		"background": Section{"generativeFill": Section{"width": 512.0}},
		"blur":       3.0,
	}, s)
}

func TestSectionMarshal_SkipsSentinel(t *testing.T) {
	raw, err := json.Marshal(Section{"mute": true, "extractAudio": Unset})
	require.NoError(t, err)
	require.JSONEq(t, `{"mute":true}`, string(raw))
}

func TestGet(t *testing.T) {
	root := Section{"shadowLighting": map[string]any{"dropShadow": Section{"azimuth": 30.0}}}

	v, ok := Get(root, Path{"shadowLighting", "dropShadow", "azimuth"})
	require.True(t, ok)
	require.Equal(t, 30.0, v)

	_, ok = Get(root, Path{"shadowLighting", "missing", "azimuth"})
	require.False(t, ok)

	_, ok = Get(root, Path{"shadowLighting", "dropShadow", "azimuth", "deeper"})
	require.False(t, ok)
}

func TestClone_IsDeep(t *testing.T) {
	orig := Section{"overlay": Section{"typography": []string{"b"}}}
	c := Clone(orig)
	SectionAt(c, Path{"overlay"})["typography"] = []string{"i"}
	require.Equal(t, []string{"b"}, SectionAt(orig, Path{"overlay"})["typography"])
}

func TestEncodeDecode(t *testing.T) {
	type fill struct {
		Prompt *string `json:"prompt,omitempty"`
		Width  *int    `json:"width,omitempty"`
	}
	w := 640
	s, err := Encode(fill{Width: &w})
	require.NoError(t, err)
	require.Equal(t, Section{"width": 640.0}, s)

	back, err := Decode[fill](s)
	require.NoError(t, err)
	require.Nil(t, back.Prompt)
	require.Equal(t, 640, *back.Width)
}

func TestParsePath(t *testing.T) {
	require.Nil(t, ParsePath(""))
	require.Equal(t, Path{"background", "generativeFill"}, ParsePath("background.generativeFill"))
	require.Equal(t, "background.generativeFill", ParsePath("background.generativeFill").String())
}
