package studio

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"thirdcoast.systems/studio/pkg/sparse"
)

// MemoryStore keeps workspaces in process. Used when no database is
// configured, and by tests.
type MemoryStore struct {
	mu         sync.RWMutex
	workspaces map[uuid.UUID]Workspace
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{workspaces: make(map[uuid.UUID]Workspace)}
}

func (m *MemoryStore) Create(_ context.Context, ws Workspace) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ws.Descriptor = sparse.Clone(ws.Descriptor)
	m.workspaces[ws.ID] = ws
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id uuid.UUID) (Workspace, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ws, ok := m.workspaces[id]
	if !ok {
		return Workspace{}, ErrNotFound
	}
	ws.Descriptor = sparse.Clone(ws.Descriptor)
	return ws, nil
}

// List returns workspaces, most recently updated first.
func (m *MemoryStore) List(_ context.Context) ([]Workspace, error) {
	m.mu.RLock()
	out := make([]Workspace, 0, len(m.workspaces))
	for _, ws := range m.workspaces {
		ws.Descriptor = sparse.Clone(ws.Descriptor)
		out = append(out, ws)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].Name < out[j].Name
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (m *MemoryStore) SaveDescriptor(_ context.Context, id uuid.UUID, desc sparse.Section) (Workspace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ws, ok := m.workspaces[id]
	if !ok {
		return Workspace{}, ErrNotFound
	}
	ws.Descriptor = sparse.Clone(desc)
	ws.UpdatedAt = time.Now().UTC()
	m.workspaces[id] = ws

	ws.Descriptor = sparse.Clone(desc)
	return ws, nil
}

func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.workspaces[id]; !ok {
		return ErrNotFound
	}
	delete(m.workspaces, id)
	return nil
}
