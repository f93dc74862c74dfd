package studio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"thirdcoast.systems/studio/pkg/overlay"
	"thirdcoast.systems/studio/pkg/panel"
	"thirdcoast.systems/studio/pkg/sparse"
	"thirdcoast.systems/studio/pkg/transform"
)

var (
	ErrUnknownOverlay    = errors.New("overlay not found")
	ErrUnsupportedKind   = errors.New("overlay kind not offered on this surface")
	ErrInvalidDescriptor = errors.New("invalid descriptor")
)

// Service applies panel and overlay edits to workspaces. Edits to one
// workspace are serialized so concurrent requests never lose a write.
type Service struct {
	store Store
	hub   *Hub

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewService creates a service over a store.
func NewService(store Store, hub *Hub) *Service {
	if hub == nil {
		hub = NewHub()
	}
	return &Service{
		store: store,
		hub:   hub,
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// Hub returns the service's buffer and preview hub.
func (s *Service) Hub() *Hub { return s.hub }

func (s *Service) lock(id uuid.UUID) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

// Create adds a new empty workspace.
func (s *Service) Create(ctx context.Context, name string, surface transform.Surface) (Workspace, error) {
	ws, err := NewWorkspace(name, surface)
	if err != nil {
		return Workspace{}, err
	}
	if err := s.store.Create(ctx, ws); err != nil {
		return Workspace{}, fmt.Errorf("create workspace: %w", err)
	}
	slog.Info("workspace created", "workspace_id", ws.ID, "surface", ws.Surface)
	return ws, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (Workspace, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Workspace, error) {
	return s.store.List(ctx)
}

// Delete removes a workspace and drops its overlay buffers.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	unlock := s.lock(id)
	defer unlock()
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.hub.Evict(id)
	s.mu.Lock()
	delete(s.locks, id)
	s.mu.Unlock()
	slog.Info("workspace deleted", "workspace_id", id)
	return nil
}

// Descriptor returns the canonical descriptor of a workspace.
func (s *Service) Descriptor(ctx context.Context, id uuid.UUID) (sparse.Section, error) {
	ws, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ws.Descriptor, nil
}

// Subscribe streams the JSON descriptor of a workspace after every change.
func (s *Service) Subscribe(id uuid.UUID) (<-chan []byte, func()) {
	return s.hub.Subscribe(id)
}

func (s *Service) panelFor(ws Workspace, name string) (*panel.Panel, error) {
	p, err := panel.Lookup(name)
	if err != nil {
		return nil, err
	}
	if p.Surface != ws.Surface {
		return nil, fmt.Errorf("%s on %s: %w", p.Name, ws.Surface, ErrSurfaceMismatch)
	}
	return p, nil
}

// editSlot loads a workspace, hands the panel's slot to fn, and stores the
// replacement.
func (s *Service) editSlot(ctx context.Context, id uuid.UUID, panelName string, fn func(p *panel.Panel, slot sparse.Section) (sparse.Section, error)) (Workspace, error) {
	unlock := s.lock(id)
	defer unlock()

	ws, err := s.store.Get(ctx, id)
	if err != nil {
		return Workspace{}, err
	}
	p, err := s.panelFor(ws, panelName)
	if err != nil {
		return Workspace{}, err
	}
	next, err := fn(p, transform.SlotSection(ws.Descriptor, p.Slot))
	if err != nil {
		return Workspace{}, err
	}
	return s.save(ctx, ws.ID, transform.WithSlot(ws.Descriptor, p.Slot, next))
}

// UpdateField applies one control edit from a section panel.
func (s *Service) UpdateField(ctx context.Context, id uuid.UUID, panelName, key, raw string) (Workspace, error) {
	return s.editSlot(ctx, id, panelName, func(p *panel.Panel, slot sparse.Section) (sparse.Section, error) {
		return p.Update(slot, key, raw)
	})
}

// ResetGroup clears one group of a section panel.
func (s *Service) ResetGroup(ctx context.Context, id uuid.UUID, panelName, group string) (Workspace, error) {
	return s.editSlot(ctx, id, panelName, func(p *panel.Panel, slot sparse.Section) (sparse.Section, error) {
		return p.ResetGroup(slot, group)
	})
}

// ResetPanel clears everything a section panel owns.
func (s *Service) ResetPanel(ctx context.Context, id uuid.UUID, panelName string) (Workspace, error) {
	return s.editSlot(ctx, id, panelName, func(p *panel.Panel, slot sparse.Section) (sparse.Section, error) {
		return p.ResetAll(slot), nil
	})
}

// MountOverlays seeds a fresh overlay buffer for client from the stored list.
func (s *Service) MountOverlays(ctx context.Context, client string, id uuid.UUID) ([]overlay.Item, error) {
	ws, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.hub.Mount(client, ws).Items(), nil
}

// editOverlays runs fn against the client's buffer and stores the published
// list when fn changed it.
func (s *Service) editOverlays(ctx context.Context, client string, id uuid.UUID, fn func(c *overlay.Controller) error) (Workspace, []overlay.Item, error) {
	unlock := s.lock(id)
	defer unlock()

	ws, err := s.store.Get(ctx, id)
	if err != nil {
		return Workspace{}, nil, err
	}
	buf := s.hub.Buffer(client, ws)

	var fnErr error
	items, changed := buf.Do(func(c *overlay.Controller) {
		fnErr = fn(c)
	})
	if fnErr != nil {
		return Workspace{}, nil, fnErr
	}
	if changed {
		saved, err := s.save(ctx, ws.ID, transform.WithList(ws.Descriptor, panel.OverlaySlot(ws.Surface), items))
		if err != nil {
			// The buffer already holds the edit; reseed it from the stored list.
			s.hub.Mount(client, ws)
			return Workspace{}, nil, err
		}
		ws = saved
	}
	return ws, buf.Items(), nil
}

// AddOverlay adds a default overlay of kind. Image workspaces keep only the
// newest overlay; video workspaces append.
func (s *Service) AddOverlay(ctx context.Context, client string, id uuid.UUID, kind transform.OverlayKind) (Workspace, []overlay.Item, error) {
	return s.editOverlays(ctx, client, id, func(c *overlay.Controller) error {
		if c.Add(kind) == "" {
			return fmt.Errorf("%s on %s: %w", kind, c.Surface(), ErrUnsupportedKind)
		}
		return nil
	})
}

// UpdateOverlayField applies one item control edit.
func (s *Service) UpdateOverlayField(ctx context.Context, client string, id uuid.UUID, overlayID, key, raw string) (Workspace, []overlay.Item, error) {
	return s.editOverlays(ctx, client, id, func(c *overlay.Controller) error {
		it, ok := c.Item(overlayID)
		if !ok {
			return fmt.Errorf("%s: %w", overlayID, ErrUnknownOverlay)
		}
		f, ok := panel.OverlayField(c.Surface(), it.Kind(), key)
		if !ok {
			return fmt.Errorf("%s overlay: %w: %s", it.Kind(), panel.ErrUnknownField, key)
		}
		c.Update(overlayID, f.Patch(it.Fields, raw))
		return nil
	})
}

// RemoveOverlay deletes one overlay. Removing an unknown id changes nothing.
func (s *Service) RemoveOverlay(ctx context.Context, client string, id uuid.UUID, overlayID string) (Workspace, []overlay.Item, error) {
	return s.editOverlays(ctx, client, id, func(c *overlay.Controller) error {
		c.Remove(overlayID)
		return nil
	})
}

// ResetOverlays clears the overlay list.
func (s *Service) ResetOverlays(ctx context.Context, client string, id uuid.UUID) (Workspace, []overlay.Item, error) {
	return s.editOverlays(ctx, client, id, func(c *overlay.Controller) error {
		c.ResetAll()
		return nil
	})
}

// ReplaceDescriptor swaps the whole descriptor for a validated document.
// Overlay buffers are dropped so clients reseed from the new list.
func (s *Service) ReplaceDescriptor(ctx context.Context, id uuid.UUID, raw []byte) (Workspace, error) {
	desc, err := ParseDescriptor(raw)
	if err != nil {
		return Workspace{}, err
	}

	unlock := s.lock(id)
	defer unlock()
	if _, err := s.store.Get(ctx, id); err != nil {
		return Workspace{}, err
	}
	ws, err := s.save(ctx, id, desc)
	if err != nil {
		return Workspace{}, err
	}
	s.hub.Evict(id)
	return ws, nil
}

// ParseDescriptor checks a raw document against the schema and the typed
// range rules, and returns its canonical tree form: keys holding a control's
// off value and emptied sections are dropped.
func ParseDescriptor(raw []byte) (sparse.Section, error) {
	if err := transform.ValidateDocument(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDescriptor, err)
	}
	parsed, err := sparse.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDescriptor, err)
	}
	desc := panel.Canonical(parsed)
	typed, err := transform.DecodeDescriptor(desc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDescriptor, err)
	}
	if err := typed.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDescriptor, err)
	}
	return desc, nil
}

func (s *Service) save(ctx context.Context, id uuid.UUID, desc sparse.Section) (Workspace, error) {
	ws, err := s.store.SaveDescriptor(ctx, id, desc)
	if err != nil {
		return Workspace{}, fmt.Errorf("save descriptor: %w", err)
	}
	s.Publish(ws.ID, ws.Descriptor)
	return ws, nil
}

// Publish sends a descriptor to the workspace's preview subscribers.
func (s *Service) Publish(id uuid.UUID, desc sparse.Section) {
	if s.hub.Subscribers(id) == 0 {
		return
	}
	data, err := json.Marshal(desc)
	if err != nil {
		slog.Warn("failed to encode descriptor preview", "workspace_id", id, "err", err)
		return
	}
	s.hub.Broadcast(id, data)
}
