package sparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMerge_UnsetRemovesKey(t *testing.T) {
	cur := Section{"remove": true, "mode": "economy"}
	got := Merge(cur, Section{"remove": Unset})
	require.Equal(t, Section{"mode": "economy"}, got)
	// input untouched
	require.Equal(t, Section{"remove": true, "mode": "economy"}, cur)
}

func TestMerge_Idempotent(t *testing.T) {
	cases := []struct {
		name  string
		cur   Section
		patch Section
	}{
		{"empty", Section{}, Section{"blur": 3.0}},
		{"overwrite", Section{"blur": 1.0, "sharpen": 2.0}, Section{"blur": 4.5}},
		{"nested value", Section{"shadow": Section{"blur": 1.0}}, Section{"shadow": Section{"offsetX": 3.0}}},
		{"nil current", nil, Section{"mute": true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			once := Merge(tc.cur, tc.patch)
			twice := Merge(once, tc.patch)
			require.Equal(t, once, twice)
		})
	}
}

func TestMerge_Locality(t *testing.T) {
	shadow := Section{"blur": 2.0}
	cur := Section{"blur": 1.0, "sharpen": 5.0, "shadow": shadow}
	got := Merge(cur, Section{"blur": 7.0})

	require.Equal(t, 7.0, got["blur"])
	require.Equal(t, 5.0, got["sharpen"])
	// untouched nested sections are carried by reference
	gotShadow, ok := AsSection(got["shadow"])
	require.True(t, ok)
	gotShadow["marker"] = true
	require.True(t, shadow.Has("marker"))
}

func TestMergeAt_RemoveBackgroundToggle(t *testing.T) {
	root := Section{}

	on := MergeAt(root, Path{"background"}, Section{"remove": true}, nil)
	require.Equal(t, Section{"background": Section{"remove": true}}, on)

	off := MergeAt(on, Path{"background"}, Section{"remove": Unset}, nil)
	require.Equal(t, Section{}, off)
	require.False(t, off.Has("background"))
}

func TestMergeAt_GenerativeFillWidth(t *testing.T) {
	pin := Pinned(Path{"background", "generativeFill"})
	root := Section{"background": Section{"generativeFill": Section{}}}
	fill := Path{"background", "generativeFill"}

	set := MergeAt(root, fill, Section{"width": 512.0}, pin)
	require.Equal(t, Section{"background": Section{"generativeFill": Section{"width": 512.0}}}, set)

	cleared := MergeAt(set, fill, Section{"width": Unset}, pin)
	require.Equal(t, Section{"background": Section{"generativeFill": Section{}}}, cleared)
	require.Equal(t, Section{"background": Section{"generativeFill": Section{"width": 512.0}}}, set)
}

func TestMergeAt_RebuildsAncestorsWithoutMutation(t *testing.T) {
	root := Section{
		"shadowLighting": Section{"dropShadow": Section{"azimuth": 90.0}},
		"editing":        Section{"retouch": true},
	}
	got := MergeAt(root, Path{"shadowLighting", "dropShadow"}, Section{"elevation": 45.0}, nil)

	require.Equal(t, Section{"azimuth": 90.0, "elevation": 45.0}, SectionAt(got, Path{"shadowLighting", "dropShadow"}))
	require.Equal(t, Section{"azimuth": 90.0}, SectionAt(root, Path{"shadowLighting", "dropShadow"}))
	require.Equal(t, root["editing"], got["editing"])
}

func TestWithout_ClearsExactlyOneSection(t *testing.T) {
	root := Section{
		"background":     Section{"remove": true},
		"editing":        Section{"prompt": "make it pop"},
		"shadowLighting": Section{"dropShadow": Section{"azimuth": 10.0}},
	}
	got := Without(root, Path{"editing"})

	require.False(t, got.Has("editing"))
	require.Equal(t, root["background"], got["background"])
	require.Equal(t, root["shadowLighting"], got["shadowLighting"])
	require.Len(t, got, 2)
	require.True(t, root.Has("editing"))
}

func TestWithout_Nested(t *testing.T) {
	root := Section{"thumbnail": Section{"border": Section{"width": 2.0}, "width": 300.0}}
	got := Without(root, Path{"thumbnail", "border"})
	require.Equal(t, Section{"thumbnail": Section{"width": 300.0}}, got)

	require.Equal(t, root, Without(root, Path{"missing", "border"}))
	require.Equal(t, Section{}, Without(root, nil))
}

func TestWithoutAll(t *testing.T) {
	root := Section{"width": "200", "height": "100", "aspectRatio": "16-9", "zoom": 2.0}
	got := WithoutAll(root, Path{"width"}, Path{"height"}, Path{"aspectRatio"})
	require.Equal(t, Section{"zoom": 2.0}, got)
}

func TestPrune_DropsEmptySectionsKeepsPinned(t *testing.T) {
	root := Section{
		"background": Section{"generativeFill": Section{}},
		"editing":    Section{},
		"cropping":   Section{"zoom": 2.0, "box": Section{"inner": Section{}}},
	}
	got := Prune(root, Pinned(Path{"background", "generativeFill"}))
	require.Equal(t, Section{
		"background": Section{"generativeFill": Section{}},
		"cropping":   Section{"zoom": 2.0},
	}, got)
	require.Contains(t, root, "editing", "input is not modified")

	require.Equal(t, Section{}, Prune(Section{"a": Section{"b": Section{}}}, nil))
}
