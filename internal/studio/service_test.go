package studio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"thirdcoast.systems/studio/pkg/overlay"
	"thirdcoast.systems/studio/pkg/panel"
	"thirdcoast.systems/studio/pkg/sparse"
	"thirdcoast.systems/studio/pkg/transform"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	hub := NewHub()
	n := 0
	hub.ids = func() string {
		n++
		return fmt.Sprintf("ov-%d", n)
	}
	return NewService(NewMemoryStore(), hub)
}

func bufferItems(t *testing.T, svc *Service, client string, id uuid.UUID) []overlay.Item {
	t.Helper()
	ws, err := svc.store.Get(context.Background(), id)
	require.NoError(t, err)
	return svc.hub.Buffer(client, ws).Items()
}

type failingStore struct {
	*MemoryStore
	failSave bool
}

func (f *failingStore) SaveDescriptor(ctx context.Context, id uuid.UUID, desc sparse.Section) (Workspace, error) {
	if f.failSave {
		return Workspace{}, errors.New("disk full")
	}
	return f.MemoryStore.SaveDescriptor(ctx, id, desc)
}

func TestService_UpdateFieldAndReset(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	ws, err := svc.Create(ctx, "", transform.SurfaceImage)
	require.NoError(t, err)
	require.Equal(t, "Untitled image", ws.Name)

	ws, err = svc.UpdateField(ctx, ws.ID, panel.NameAIMagic, "background.remove", "true")
	require.NoError(t, err)
	require.Equal(t, sparse.Section{"aiMagic": sparse.Section{"background": sparse.Section{"remove": true}}}, ws.Descriptor)

	ws, err = svc.UpdateField(ctx, ws.ID, panel.NameAIMagic, "background.remove", "false")
	require.NoError(t, err)
	require.Empty(t, ws.Descriptor, "an emptied slot is dropped")

	_, err = svc.UpdateField(ctx, ws.ID, panel.NameEnhancements, "sharpen", "40")
	require.NoError(t, err)
	_, err = svc.UpdateField(ctx, ws.ID, panel.NameAIMagic, "background.remove", "true")
	require.NoError(t, err)

	ws, err = svc.ResetPanel(ctx, ws.ID, panel.NameEnhancements)
	require.NoError(t, err)
	require.NotContains(t, ws.Descriptor, "enhancements")
	require.Contains(t, ws.Descriptor, "aiMagic")
}

func TestService_SurfaceMismatch(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	ws, err := svc.Create(ctx, "clip", transform.SurfaceVideo)
	require.NoError(t, err)

	_, err = svc.UpdateField(ctx, ws.ID, panel.NameAIMagic, "background.remove", "true")
	require.ErrorIs(t, err, ErrSurfaceMismatch)

	_, err = svc.UpdateField(ctx, ws.ID, "nope", "x", "1")
	require.ErrorIs(t, err, panel.ErrUnknownPanel)

	_, err = svc.UpdateField(ctx, uuid.New(), panel.NameAudio, "mute", "true")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_OverlayLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	ws, err := svc.Create(ctx, "clip", transform.SurfaceVideo)
	require.NoError(t, err)

	_, items, err := svc.AddOverlay(ctx, "c1", ws.ID, transform.OverlaySolid)
	require.NoError(t, err)
	require.Len(t, items, 1)
	id := items[0].ID

	ws, items, err = svc.UpdateOverlayField(ctx, "c1", ws.ID, id, "width", "250")
	require.NoError(t, err)
	require.Equal(t, 250.0, items[0].Fields["width"])

	list := transform.SlotList(ws.Descriptor, transform.SlotVideoOverlays)
	require.Len(t, list, 1)
	require.Equal(t, 250.0, list[0]["width"])
	require.NotContains(t, list[0], "id")

	_, _, err = svc.UpdateOverlayField(ctx, "c1", ws.ID, "missing", "width", "1")
	require.ErrorIs(t, err, ErrUnknownOverlay)
	_, _, err = svc.UpdateOverlayField(ctx, "c1", ws.ID, id, "nope", "1")
	require.ErrorIs(t, err, panel.ErrUnknownField)

	ws, items, err = svc.RemoveOverlay(ctx, "c1", ws.ID, id)
	require.NoError(t, err)
	require.Empty(t, items)
	require.NotContains(t, ws.Descriptor, "videoOverlays")
}

func TestService_ImageAddReplaces(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	ws, err := svc.Create(ctx, "photo", transform.SurfaceImage)
	require.NoError(t, err)

	_, _, err = svc.AddOverlay(ctx, "c1", ws.ID, transform.OverlayText)
	require.NoError(t, err)
	ws, items, err := svc.AddOverlay(ctx, "c1", ws.ID, transform.OverlayGradient)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Len(t, transform.SlotList(ws.Descriptor, transform.SlotOverlays), 1)

	_, _, err = svc.AddOverlay(ctx, "c1", ws.ID, transform.OverlayVideo)
	require.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestService_RemoveUnknownDoesNotSave(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	ws, err := svc.Create(ctx, "clip", transform.SurfaceVideo)
	require.NoError(t, err)

	got, _, err := svc.RemoveOverlay(ctx, "c1", ws.ID, "missing")
	require.NoError(t, err)
	require.Equal(t, ws.UpdatedAt, got.UpdatedAt)
}

func TestService_BufferIsOneShotSeed(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	ws, err := svc.Create(ctx, "clip", transform.SurfaceVideo)
	require.NoError(t, err)

	_, _, err = svc.AddOverlay(ctx, "c1", ws.ID, transform.OverlayText)
	require.NoError(t, err)

	// A second client mounted later sees the stored list.
	items, err := svc.MountOverlays(ctx, "c2", ws.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Edits from c1 do not reach c2's buffer until it remounts.
	_, _, err = svc.AddOverlay(ctx, "c1", ws.ID, transform.OverlaySolid)
	require.NoError(t, err)
	require.Len(t, bufferItems(t, svc, "c2", ws.ID), 1)

	items, err = svc.MountOverlays(ctx, "c2", ws.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestService_ReplaceDescriptor(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	ws, err := svc.Create(ctx, "clip", transform.SurfaceVideo)
	require.NoError(t, err)
	_, _, err = svc.AddOverlay(ctx, "c1", ws.ID, transform.OverlayText)
	require.NoError(t, err)

	doc := []byte(`{"audio":{"mute":true},"videoOverlays":[{"type":"solid","color":"00ff00"}]}`)
	ws, err = svc.ReplaceDescriptor(ctx, ws.ID, doc)
	require.NoError(t, err)
	require.Equal(t, true, sparse.SectionAt(ws.Descriptor, sparse.Path{"audio"})["mute"])

	items := bufferItems(t, svc, "c1", ws.ID)
	require.Len(t, items, 1, "buffers reseed after a replace")
	require.Equal(t, "00ff00", items[0].Fields["color"])

	_, err = svc.ReplaceDescriptor(ctx, ws.ID, []byte(`{"audio":{"mute":false}}`))
	require.True(t, transform.IsSchemaError(err))
	require.ErrorIs(t, err, ErrInvalidDescriptor)

	_, err = svc.ReplaceDescriptor(ctx, ws.ID, []byte(`{"enhancements":{"sharpen":500}}`))
	require.ErrorIs(t, err, ErrInvalidDescriptor)
}

func TestService_PreviewBroadcast(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	ws, err := svc.Create(ctx, "clip", transform.SurfaceVideo)
	require.NoError(t, err)

	ch, unsubscribe := svc.Subscribe(ws.ID)
	defer unsubscribe()

	_, err = svc.UpdateField(ctx, ws.ID, panel.NameAudio, "mute", "true")
	require.NoError(t, err)

	data := <-ch
	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, map[string]any{"audio": map[string]any{"mute": true}}, got)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	ws, err := svc.Create(ctx, "clip", transform.SurfaceVideo)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, ws.ID))
	_, err = svc.Get(ctx, ws.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, ws.ID), ErrNotFound)
}

func TestHub_SubscriberLimit(t *testing.T) {
	h := NewHub()
	id := uuid.New()
	var unsubs []func()
	for i := 0; i < MaxPreviewSubsPerWorkspace; i++ {
		_, u := h.Subscribe(id)
		unsubs = append(unsubs, u)
	}
	ch, _ := h.Subscribe(id)
	_, open := <-ch
	require.False(t, open)
	require.Equal(t, MaxPreviewSubsPerWorkspace, h.Subscribers(id))

	for _, u := range unsubs {
		u()
		u()
	}
	require.Zero(t, h.Subscribers(id))
	h.Broadcast(id, []byte("{}"))
}

func TestService_FailedOverlaySaveReseedsBuffer(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{MemoryStore: NewMemoryStore()}
	svc := NewService(store, NewHub())
	ws, err := svc.Create(ctx, "clip", transform.SurfaceVideo)
	require.NoError(t, err)

	_, items, err := svc.AddOverlay(ctx, "c1", ws.ID, transform.OverlayText)
	require.NoError(t, err)
	require.Len(t, items, 1)

	store.failSave = true
	_, _, err = svc.AddOverlay(ctx, "c1", ws.ID, transform.OverlaySolid)
	require.Error(t, err)
	require.Len(t, bufferItems(t, svc, "c1", ws.ID), 1, "the buffer matches the stored list")

	store.failSave = false
	_, items, err = svc.AddOverlay(ctx, "c1", ws.ID, transform.OverlaySolid)
	require.NoError(t, err)
	require.Len(t, items, 2)
	stored, err := svc.Descriptor(ctx, ws.ID)
	require.NoError(t, err)
	require.Len(t, transform.SlotList(stored, transform.SlotVideoOverlays), 2)
}

func TestParseDescriptor_DropsOffValuesAndEmptySections(t *testing.T) {
	got, err := ParseDescriptor([]byte(`{
		"aiMagic": {"cropping": {"zoom": 1}, "editing": {}},
		"basics": {"focus": "center", "cropMode": "maintain_ratio", "dpr": 1, "zoom": 1, "radius": 0, "aspectRatio": "custom"},
		"audio": {},
		"overlays": []
	}`))
	require.NoError(t, err)
	require.Equal(t, sparse.Section{}, got)

	got, err = ParseDescriptor([]byte(`{
		"aiMagic": {"background": {"generativeFill": {}}, "cropping": {"zoom": 2, "width": 0}},
		"basics": {"dpr": 2, "focus": "top"}
	}`))
	require.NoError(t, err)
	require.Equal(t, sparse.Section{
		"aiMagic": sparse.Section{
			"background": sparse.Section{"generativeFill": sparse.Section{}},
			"cropping":   sparse.Section{"zoom": 2.0, "width": 0.0},
		},
		"basics": sparse.Section{"dpr": 2.0, "focus": "top"},
	}, got)
}

func TestService_EditedDescriptorReimports(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	ws, err := svc.Create(ctx, "clip", transform.SurfaceVideo)
	require.NoError(t, err)

	edits := []struct{ panel, key, raw string }{
		{panel.NameVideoEnhancement, "thumbnail.bg", "#00FF00"},
		{panel.NameVideoEnhancement, "thumbnail.bg", "red"},
		{panel.NameVideoEnhancement, "thumbnail.width", "-20"},
		{panel.NameVideoBasics, "radius", "-3"},
		{panel.NameVideoBasics, "rotate", "90"},
		{panel.NameVideoBasics, "background.blurIntensity", "-5"},
	}
	for _, e := range edits {
		_, err = svc.UpdateField(ctx, ws.ID, e.panel, e.key, e.raw)
		require.NoError(t, err, e.key)
	}

	_, items, err := svc.AddOverlay(ctx, "c1", ws.ID, transform.OverlayText)
	require.NoError(t, err)
	id := items[0].ID
	for _, e := range [][2]string{{"color", "red"}, {"color", ""}, {"fontSize", "-4"}, {"startOffset", "-1"}} {
		_, _, err = svc.UpdateOverlayField(ctx, "c1", ws.ID, id, e[0], e[1])
		require.NoError(t, err, e[0])
	}

	desc, err := svc.Descriptor(ctx, ws.ID)
	require.NoError(t, err)
	raw, err := json.Marshal(desc)
	require.NoError(t, err)

	back, err := ParseDescriptor(raw)
	require.NoError(t, err)
	again, err := json.Marshal(back)
	require.NoError(t, err)
	require.JSONEq(t, string(raw), string(again))

	require.Equal(t, "00ff00", sparse.SectionAt(desc, sparse.ParsePath("videoEnhancement.thumbnail"))["bg"])
	item := transform.SlotList(desc, transform.SlotVideoOverlays)[0]
	require.Equal(t, "000000", item["color"])
	require.Equal(t, 0.0, item["fontSize"])
	require.Equal(t, 0.0, item["startOffset"])
}
