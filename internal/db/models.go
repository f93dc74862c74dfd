package db

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Workspace struct {
	ID         pgtype.UUID        `json:"id"`
	Name       string             `json:"name"`
	Surface    string             `json:"surface"`
	Descriptor DescriptorDoc      `json:"descriptor"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}
