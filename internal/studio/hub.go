package studio

import (
	"sync"

	"github.com/google/uuid"
	"thirdcoast.systems/studio/pkg/overlay"
	"thirdcoast.systems/studio/pkg/panel"
	"thirdcoast.systems/studio/pkg/sparse"
	"thirdcoast.systems/studio/pkg/transform"
)

const (
	// MaxPreviewSubsPerWorkspace limits descriptor preview streams per workspace.
	MaxPreviewSubsPerWorkspace = 50
)

// Buffer is one client's overlay editing buffer for one workspace. The
// controller is not safe for concurrent use, so every access goes through Do.
type Buffer struct {
	mu        sync.Mutex
	ctrl      *overlay.Controller
	published []sparse.Section
	dirty     bool
}

func newBuffer(ws Workspace, opts ...overlay.Option) *Buffer {
	b := &Buffer{}
	slot := panel.OverlaySlot(ws.Surface)
	opts = append(opts, overlay.WithPublisher(func(items []sparse.Section) {
		b.published = items
		b.dirty = true
	}))
	b.ctrl = overlay.New(ws.Surface, transform.SlotList(ws.Descriptor, slot), opts...)
	return b
}

// Do runs fn against the controller. When fn mutated the list, the
// identifier-free list is returned with changed set.
func (b *Buffer) Do(fn func(c *overlay.Controller)) (items []sparse.Section, changed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dirty = false
	fn(b.ctrl)
	if !b.dirty {
		return nil, false
	}
	return b.published, true
}

// Items returns a snapshot of the buffer, identifiers included.
func (b *Buffer) Items() []overlay.Item {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ctrl.Items()
}

type bufferKey struct {
	client    string
	workspace uuid.UUID
}

// Hub holds overlay editing buffers and preview subscribers.
type Hub struct {
	mu      sync.Mutex
	buffers map[bufferKey]*Buffer
	subs    map[uuid.UUID]map[chan []byte]struct{}
	ids     func() string
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		buffers: make(map[bufferKey]*Buffer),
		subs:    make(map[uuid.UUID]map[chan []byte]struct{}),
	}
}

// Mount seeds a fresh buffer for client from the workspace's current overlay
// list, replacing any earlier one. Later descriptor changes are not pulled
// into the buffer; Evict forces a reseed.
func (h *Hub) Mount(client string, ws Workspace) *Buffer {
	b := newBuffer(ws, h.options()...)
	h.mu.Lock()
	h.buffers[bufferKey{client, ws.ID}] = b
	h.mu.Unlock()
	return b
}

// Buffer returns the client's buffer, mounting one when none exists.
func (h *Hub) Buffer(client string, ws Workspace) *Buffer {
	h.mu.Lock()
	b, ok := h.buffers[bufferKey{client, ws.ID}]
	h.mu.Unlock()
	if ok {
		return b
	}
	return h.Mount(client, ws)
}

// Evict drops every buffer of a workspace so the next access reseeds.
func (h *Hub) Evict(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for k := range h.buffers {
		if k.workspace == id {
			delete(h.buffers, k)
		}
	}
}

// Subscribe registers a preview stream for a workspace. The channel is closed
// immediately when the workspace already has too many subscribers.
func (h *Hub) Subscribe(id uuid.UUID) (<-chan []byte, func()) {
	ch := make(chan []byte, 8)

	h.mu.Lock()
	subs, ok := h.subs[id]
	if !ok {
		subs = make(map[chan []byte]struct{})
		h.subs[id] = subs
	}
	if len(subs) >= MaxPreviewSubsPerWorkspace {
		h.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	subs[ch] = struct{}{}
	h.mu.Unlock()

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		subs, ok := h.subs[id]
		if !ok {
			return
		}
		if _, ok := subs[ch]; ok {
			delete(subs, ch)
			close(ch)
		}
		if len(subs) == 0 {
			delete(h.subs, id)
		}
	}
	return ch, unsubscribe
}

// Broadcast sends data to every preview subscriber of a workspace. Slow
// subscribers miss updates rather than block the writer. Sends happen under
// the lock so an unsubscribe cannot close a channel mid-send.
func (h *Hub) Broadcast(id uuid.UUID, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[id] {
		select {
		case ch <- data:
		default:
		}
	}
}

// Subscribers returns the number of preview streams of a workspace.
func (h *Hub) Subscribers(id uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[id])
}

func (h *Hub) options() []overlay.Option {
	if h.ids == nil {
		return nil
	}
	return []overlay.Option{overlay.WithIDs(h.ids)}
}
