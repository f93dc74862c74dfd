// Package studio holds the workspaces that own canonical transformation
// descriptors, and the service that applies panel edits to them.
package studio

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"thirdcoast.systems/studio/pkg/sparse"
	"thirdcoast.systems/studio/pkg/transform"
)

var (
	ErrNotFound        = errors.New("workspace not found")
	ErrSurfaceMismatch = errors.New("panel does not belong to this workspace surface")
	ErrInvalidSurface  = errors.New("invalid surface")
)

// Workspace is one asset being edited. It is the single owner of the
// descriptor; panels only ever receive a copy of their slot.
type Workspace struct {
	ID         uuid.UUID
	Name       string
	Surface    transform.Surface
	Descriptor sparse.Section
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewWorkspace returns a workspace with an empty descriptor.
func NewWorkspace(name string, surface transform.Surface) (Workspace, error) {
	if !surface.Valid() {
		return Workspace{}, ErrInvalidSurface
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Untitled " + string(surface)
	}
	now := time.Now().UTC()
	return Workspace{
		ID:         uuid.New(),
		Name:       name,
		Surface:    surface,
		Descriptor: sparse.Section{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Store persists workspaces.
type Store interface {
	Create(ctx context.Context, ws Workspace) error
	Get(ctx context.Context, id uuid.UUID) (Workspace, error)
	List(ctx context.Context) ([]Workspace, error)
	SaveDescriptor(ctx context.Context, id uuid.UUID, desc sparse.Section) (Workspace, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
