package overlay

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"thirdcoast.systems/studio/pkg/panel"
	"thirdcoast.systems/studio/pkg/sparse"
	"thirdcoast.systems/studio/pkg/transform"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("ov-%d", n)
	}
}

type recorder struct {
	calls [][]sparse.Section
}

func (r *recorder) publish(items []sparse.Section) { r.calls = append(r.calls, items) }

func (r *recorder) last() []sparse.Section { return r.calls[len(r.calls)-1] }

func TestController_AddUpdateRemoveSolid(t *testing.T) {
	rec := &recorder{}
	c := New(transform.SurfaceVideo, nil, WithIDs(sequentialIDs()), WithPublisher(rec.publish))

	id := c.Add(transform.OverlaySolid)
	require.Equal(t, "ov-1", id)
	items := c.Items()
	require.Len(t, items, 1)
	require.Equal(t, "ff0000", items[0].Fields["color"])
	require.Equal(t, 100.0, items[0].Fields["width"])
	require.Equal(t, 100.0, items[0].Fields["height"])
	require.Equal(t, 0.0, items[0].Fields["radius"])

	require.True(t, c.Update(id, sparse.Section{"width": 250.0}))
	got, ok := c.Item(id)
	require.True(t, ok)
	require.Equal(t, 250.0, got.Fields["width"])
	require.Equal(t, "ff0000", got.Fields["color"])

	require.True(t, c.Remove(id))
	require.Empty(t, c.Items())
	require.Len(t, rec.calls, 3)
	require.Empty(t, rec.last())
}

func TestController_ImageSolidDefaults(t *testing.T) {
	c := New(transform.SurfaceImage, nil, WithIDs(sequentialIDs()))
	id := c.Add(transform.OverlaySolid)

	it, ok := c.Item(id)
	require.True(t, ok)
	require.Equal(t, sparse.Section{
		"type": "solid", "color": "ff0000", "width": 100.0, "height": 100.0, "radius": 0.0,
	}, it.Fields)
}

func TestController_RemovePreservesOrder(t *testing.T) {
	c := New(transform.SurfaceVideo, nil, WithIDs(sequentialIDs()))
	var ids []string
	for _, k := range []transform.OverlayKind{
		transform.OverlayText, transform.OverlaySolid, transform.OverlayImage, transform.OverlayVideo,
	} {
		ids = append(ids, c.Add(k))
	}

	require.True(t, c.Remove(ids[1]))

	pub := c.Published()
	require.Len(t, pub, 3)
	require.Equal(t, "text", pub[0]["type"])
	require.Equal(t, "image", pub[1]["type"])
	require.Equal(t, "video", pub[2]["type"])
	for _, p := range pub {
		require.NotContains(t, p, "id")
		require.NotContains(t, p, "_uiId")
	}

	require.False(t, c.Remove("missing"))
	require.Len(t, c.Items(), 3)
}

func TestController_AddModes(t *testing.T) {
	img := New(transform.SurfaceImage, []sparse.Section{{"type": "text", "text": "old"}}, WithIDs(sequentialIDs()))
	require.Equal(t, ReplaceAll, img.Mode())
	img.Add(transform.OverlaySolid)
	img.Add(transform.OverlayGradient)
	pub := img.Published()
	require.Len(t, pub, 1, "image surface keeps only the newest overlay")
	require.Equal(t, "gradient", pub[0]["type"])

	vid := New(transform.SurfaceVideo, []sparse.Section{{"type": "text", "text": "old"}}, WithIDs(sequentialIDs()))
	require.Equal(t, Append, vid.Mode())
	vid.Add(transform.OverlaySolid)
	vid.Add(transform.OverlayVideo)
	pub = vid.Published()
	require.Len(t, pub, 3)
	require.Equal(t, "old", pub[0]["text"])
	require.Equal(t, "video", pub[2]["type"])

	forced := New(transform.SurfaceImage, nil, WithMode(Append))
	forced.Add(transform.OverlayText)
	forced.Add(transform.OverlayText)
	require.Len(t, forced.Items(), 2)
}

func TestController_UnsupportedKind(t *testing.T) {
	rec := &recorder{}
	c := New(transform.SurfaceImage, nil, WithPublisher(rec.publish))
	require.Equal(t, "", c.Add(transform.OverlayVideo))
	require.Empty(t, c.Items())
	require.Empty(t, rec.calls)
}

func TestController_UpdateMissingIsNoop(t *testing.T) {
	rec := &recorder{}
	c := New(transform.SurfaceVideo, nil, WithPublisher(rec.publish))
	require.False(t, c.Update("nope", sparse.Section{"width": 1.0}))
	require.Empty(t, rec.calls)
}

func TestController_SeedIsCopied(t *testing.T) {
	seed := []sparse.Section{{"type": "solid", "color": "00ff00"}}
	c := New(transform.SurfaceVideo, seed)

	items := c.Items()
	require.Len(t, items, 1)
	require.NotEmpty(t, items[0].ID)

	c.Update(items[0].ID, sparse.Section{"color": "0000ff"})
	require.Equal(t, "00ff00", seed[0]["color"], "seed must not be mutated")

	items[0].Fields["color"] = "ffffff"
	got, _ := c.Item(items[0].ID)
	require.Equal(t, "0000ff", got.Fields["color"], "Items returns copies")
}

func TestController_ResetAll(t *testing.T) {
	rec := &recorder{}
	c := New(transform.SurfaceVideo, []sparse.Section{{"type": "video"}, {"type": "text"}}, WithPublisher(rec.publish))
	c.ResetAll()
	require.Empty(t, c.Items())
	require.Len(t, rec.calls, 1)
	require.Empty(t, rec.last())
}

func TestController_FieldPatchesThroughPanel(t *testing.T) {
	c := New(transform.SurfaceVideo, nil, WithIDs(sequentialIDs()))
	id := c.Add(transform.OverlayText)

	f, ok := panel.OverlayField(transform.SurfaceVideo, transform.OverlayText, "typography.b")
	require.True(t, ok)
	it, _ := c.Item(id)
	c.Update(id, f.Patch(it.Fields, "true"))

	fs, ok := panel.OverlayField(transform.SurfaceVideo, transform.OverlayText, "fontSize")
	require.True(t, ok)
	it, _ = c.Item(id)
	c.Update(id, fs.Patch(it.Fields, "not a number"))

	it, _ = c.Item(id)
	require.Equal(t, []any{"b"}, it.Fields["typography"])
	require.Equal(t, 0.0, it.Fields["fontSize"])

	o, err := transform.DecodeOverlay(it.Fields)
	require.NoError(t, err)
	require.NoError(t, transform.ValidateOverlay(o))
	require.True(t, o.HasTypography(transform.TypographyBold))
}

func TestDefaults_ValidateAgainstSchema(t *testing.T) {
	for _, s := range []transform.Surface{transform.SurfaceImage, transform.SurfaceVideo} {
		for _, k := range panel.OverlayKinds(s) {
			fields, ok := Default(s, k)
			require.True(t, ok, "%s/%s", s, k)
			o, err := transform.DecodeOverlay(fields)
			require.NoError(t, err)
			require.NoError(t, transform.ValidateOverlay(o), "%s/%s", s, k)

			for key := range fields {
				if key == "type" {
					continue
				}
				_, ok := panel.OverlayField(s, k, key)
				if !ok && key == "typography" {
					continue
				}
				require.True(t, ok, "%s/%s default %q has no control", s, k, key)
			}
		}
	}
}
