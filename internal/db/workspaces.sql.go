package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const workspaceColumns = `id, name, surface, descriptor, created_at, updated_at`

func scanWorkspace(row interface{ Scan(...any) error }) (*Workspace, error) {
	var i Workspace
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Surface,
		&i.Descriptor,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return &i, err
}

const insertWorkspace = `-- name: InsertWorkspace :one
INSERT INTO workspaces (id, name, surface, descriptor, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + workspaceColumns

type InsertWorkspaceParams struct {
	ID         pgtype.UUID        `json:"id"`
	Name       string             `json:"name"`
	Surface    string             `json:"surface"`
	Descriptor DescriptorDoc      `json:"descriptor"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) InsertWorkspace(ctx context.Context, arg *InsertWorkspaceParams) (*Workspace, error) {
	row := q.db.QueryRow(ctx, insertWorkspace,
		arg.ID,
		arg.Name,
		arg.Surface,
		arg.Descriptor,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return scanWorkspace(row)
}

const getWorkspace = `-- name: GetWorkspace :one
SELECT ` + workspaceColumns + ` FROM workspaces WHERE id = $1`

func (q *Queries) GetWorkspace(ctx context.Context, id pgtype.UUID) (*Workspace, error) {
	row := q.db.QueryRow(ctx, getWorkspace, id)
	return scanWorkspace(row)
}

const listWorkspaces = `-- name: ListWorkspaces :many
SELECT ` + workspaceColumns + ` FROM workspaces ORDER BY updated_at DESC, name ASC`

func (q *Queries) ListWorkspaces(ctx context.Context) ([]*Workspace, error) {
	rows, err := q.db.Query(ctx, listWorkspaces)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []*Workspace{}
	for rows.Next() {
		i, err := scanWorkspace(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateWorkspaceDescriptor = `-- name: UpdateWorkspaceDescriptor :one
UPDATE workspaces SET descriptor = $2, updated_at = now()
WHERE id = $1
RETURNING ` + workspaceColumns

type UpdateWorkspaceDescriptorParams struct {
	ID         pgtype.UUID   `json:"id"`
	Descriptor DescriptorDoc `json:"descriptor"`
}

func (q *Queries) UpdateWorkspaceDescriptor(ctx context.Context, arg *UpdateWorkspaceDescriptorParams) (*Workspace, error) {
	row := q.db.QueryRow(ctx, updateWorkspaceDescriptor, arg.ID, arg.Descriptor)
	return scanWorkspace(row)
}

const deleteWorkspace = `-- name: DeleteWorkspace :execrows
DELETE FROM workspaces WHERE id = $1`

func (q *Queries) DeleteWorkspace(ctx context.Context, id pgtype.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteWorkspace, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const notifyWorkspaceDescriptor = `-- name: NotifyWorkspaceDescriptor :exec
SELECT pg_notify('workspace_descriptors', $1::text)`

func (q *Queries) NotifyWorkspaceDescriptor(ctx context.Context, payload string) error {
	_, err := q.db.Exec(ctx, notifyWorkspaceDescriptor, payload)
	return err
}

const listenWorkspaceDescriptors = `-- name: ListenWorkspaceDescriptors :exec
LISTEN workspace_descriptors`

func (q *Queries) ListenWorkspaceDescriptors(ctx context.Context) error {
	_, err := q.db.Exec(ctx, listenWorkspaceDescriptors)
	return err
}
