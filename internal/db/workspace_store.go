package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"thirdcoast.systems/studio/internal/studio"
	"thirdcoast.systems/studio/pkg/sparse"
	"thirdcoast.systems/studio/pkg/transform"
)

// DescriptorChannel carries "<instance>:<workspace id>" after every
// descriptor write.
const DescriptorChannel = "workspace_descriptors"

// WorkspaceStore keeps workspaces in Postgres.
type WorkspaceStore struct {
	dbc      *DatabaseConnection
	instance string
}

var _ studio.Store = (*WorkspaceStore)(nil)

// NewWorkspaceStore creates a store. Each store tags its notifications with
// a fresh instance id so its own writes can be told apart.
func NewWorkspaceStore(dbc *DatabaseConnection) *WorkspaceStore {
	return &WorkspaceStore{dbc: dbc, instance: uuid.NewString()}
}

// Instance returns the id this store puts on its notifications.
func (s *WorkspaceStore) Instance() string { return s.instance }

func toWorkspace(row *Workspace) studio.Workspace {
	return studio.Workspace{
		ID:         uuid.UUID(row.ID.Bytes),
		Name:       row.Name,
		Surface:    transform.Surface(row.Surface),
		Descriptor: row.Descriptor.Section(),
		CreatedAt:  TimeOrZero(row.CreatedAt),
		UpdatedAt:  TimeOrZero(row.UpdatedAt),
	}
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return studio.ErrNotFound
	}
	return err
}

func (s *WorkspaceStore) Create(ctx context.Context, ws studio.Workspace) error {
	_, err := s.dbc.Queries(ctx).InsertWorkspace(ctx, &InsertWorkspaceParams{
		ID:         PgUUID(ws.ID),
		Name:       ws.Name,
		Surface:    string(ws.Surface),
		Descriptor: DescriptorDoc(ws.Descriptor),
		CreatedAt:  PgTime(ws.CreatedAt),
		UpdatedAt:  PgTime(ws.UpdatedAt),
	})
	if err != nil {
		return fmt.Errorf("insert workspace: %w", err)
	}
	return nil
}

func (s *WorkspaceStore) Get(ctx context.Context, id uuid.UUID) (studio.Workspace, error) {
	row, err := s.dbc.Queries(ctx).GetWorkspace(ctx, PgUUID(id))
	if err != nil {
		return studio.Workspace{}, notFound(err)
	}
	return toWorkspace(row), nil
}

func (s *WorkspaceStore) List(ctx context.Context) ([]studio.Workspace, error) {
	rows, err := s.dbc.Queries(ctx).ListWorkspaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	out := make([]studio.Workspace, 0, len(rows))
	for _, row := range rows {
		out = append(out, toWorkspace(row))
	}
	return out, nil
}

// SaveDescriptor writes the descriptor and notifies other instances in the
// same transaction.
func (s *WorkspaceStore) SaveDescriptor(ctx context.Context, id uuid.UUID, desc sparse.Section) (studio.Workspace, error) {
	q, tx, err := s.dbc.NewWithTX(ctx)
	if err != nil {
		return studio.Workspace{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row, err := q.UpdateWorkspaceDescriptor(ctx, &UpdateWorkspaceDescriptorParams{
		ID:         PgUUID(id),
		Descriptor: DescriptorDoc(desc),
	})
	if err != nil {
		return studio.Workspace{}, notFound(err)
	}
	if err := q.NotifyWorkspaceDescriptor(ctx, s.instance+":"+id.String()); err != nil {
		return studio.Workspace{}, fmt.Errorf("notify descriptor: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return studio.Workspace{}, fmt.Errorf("commit descriptor: %w", err)
	}
	return toWorkspace(row), nil
}

func (s *WorkspaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := s.dbc.Queries(ctx).DeleteWorkspace(ctx, PgUUID(id))
	if err != nil {
		return fmt.Errorf("delete workspace: %w", err)
	}
	if n == 0 {
		return studio.ErrNotFound
	}
	return nil
}

// ParseNotification splits a descriptor notification payload.
func ParseNotification(payload string) (instance string, id uuid.UUID, err error) {
	instance, raw, ok := strings.Cut(payload, ":")
	if !ok {
		return "", uuid.Nil, fmt.Errorf("malformed descriptor notification %q", payload)
	}
	id, err = uuid.Parse(raw)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("malformed descriptor notification %q: %w", payload, err)
	}
	return instance, id, nil
}

// Relay forwards descriptor writes made by other instances to svc's preview
// subscribers until ctx ends.
func (s *WorkspaceStore) Relay(ctx context.Context, dsn string, svc *studio.Service) {
	ListenDescriptors(ctx, dsn, func(payload string) {
		instance, id, err := ParseNotification(payload)
		if err != nil {
			slog.Warn("ignoring descriptor notification", "error", err)
			return
		}
		if instance == s.instance || svc.Hub().Subscribers(id) == 0 {
			return
		}
		ws, err := s.Get(ctx, id)
		if err != nil {
			slog.Warn("descriptor notification for unreadable workspace", "workspace_id", id, "error", err)
			return
		}
		svc.Publish(id, ws.Descriptor)
	})
}
