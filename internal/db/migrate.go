package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed sql/migrations/*.sql
var embedMigrations embed.FS

// Migrations returns the embedded goose migrations rooted at their directory.
func Migrations() (fs.FS, error) {
	return fs.Sub(embedMigrations, "sql/migrations")
}

// MigrationPlan picks where Migrate takes the schema. A non-negative DownTo
// migrates down to that version. Otherwise a non-negative UpTo stops there,
// and a negative UpTo applies every pending migration.
type MigrationPlan struct {
	UpTo   int64
	DownTo int64
}

// Migrate runs the embedded migrations according to plan.
func (db *DatabaseConnection) Migrate(ctx context.Context, plan MigrationPlan) error {
	fsys, err := Migrations()
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectPostgres, stdlib.OpenDBFromPool(db.Pool), fsys)
	if err != nil {
		return fmt.Errorf("migration provider: %w", err)
	}
	defer provider.Close()

	statuses, err := provider.Status(ctx)
	if err != nil {
		return fmt.Errorf("migration status: %w", err)
	}
	for _, st := range statuses {
		slog.Info("migration embedded", "source", st.Source.Path, "version", st.Source.Version, "state", st.State)
	}

	var results []*goose.MigrationResult
	switch {
	case plan.DownTo >= 0:
		slog.Info("migrating down", "to", plan.DownTo)
		results, err = provider.DownTo(ctx, plan.DownTo)
	case plan.UpTo >= 0:
		slog.Info("migrating up", "to", plan.UpTo)
		results, err = provider.UpTo(ctx, plan.UpTo)
	default:
		slog.Info("migrating up to latest")
		results, err = provider.Up(ctx)
	}
	for _, r := range results {
		slog.Info("migration applied", "source", r.Source.Path, "direction", r.Direction, "duration", r.Duration)
	}
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
