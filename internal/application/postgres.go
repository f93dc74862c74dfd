package application

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"thirdcoast.systems/studio/internal/config"
	"thirdcoast.systems/studio/internal/db"
	"thirdcoast.systems/studio/internal/studio"
)

var (
	dbOpenBackoffBase  = 1 * time.Second
	dbOpenBackoffScale = 1.618
)

func backoff(i int) time.Duration {
	return time.Duration(float64(dbOpenBackoffBase) * math.Pow(dbOpenBackoffScale, float64(i)))
}

// OpenDBPoolWithRetry initializes a new PostgreSQL connection pool with retry logic.
func OpenDBPoolWithRetry(ctx context.Context, conf config.Config) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var lastErr error

	cfg, err := pgxpool.ParseConfig(conf.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	slog.Info("connecting to database", "host", cfg.ConnConfig.Host)
	for i := 0; i < conf.DatabaseRetries; i++ {
		if pool, err = pgxpool.NewWithConfig(ctx, cfg); err == nil {
			break
		}
		lastErr = err
		slog.Warn("database pool open failed", "error", err, "retry_in", backoff(i))
		time.Sleep(backoff(i))
	}

	if pool == nil {
		if lastErr != nil {
			return nil, fmt.Errorf("failed to connect to database after multiple attempts: %w", lastErr)
		}
		return nil, fmt.Errorf("failed to connect to database after multiple attempts")
	}

	for i := 0; i < conf.DatabaseRetries; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, 1*time.Second)
		err = pool.Ping(pingCtx)
		cancel()
		if err == nil {
			slog.Info("connected to database", "host", cfg.ConnConfig.Host)
			return pool, nil
		}
		lastErr = err
		slog.Warn("database ping failed", "error", err, "retry_in", backoff(i))
		time.Sleep(backoff(i))
	}
	pool.Close()
	if lastErr != nil {
		return nil, fmt.Errorf("failed to ping database after multiple attempts: %w", lastErr)
	}
	return nil, fmt.Errorf("failed to ping database after multiple attempts")
}

// Stores bundles the workspace store a process runs on.
type Stores struct {
	Workspaces studio.Store
	// Postgres is set when the workspaces live in the database.
	Postgres *db.WorkspaceStore
	close    func()
}

// Close releases the database pool, if any.
func (s *Stores) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStores returns the Postgres store when a DSN is configured and the
// in-memory store otherwise.
func OpenStores(ctx context.Context, conf config.Config) (*Stores, error) {
	if !conf.HasDatabase() {
		slog.Warn("DATABASE_DSN not set, workspaces are kept in memory")
		return &Stores{Workspaces: studio.NewMemoryStore()}, nil
	}

	pool, err := OpenDBPoolWithRetry(ctx, conf)
	if err != nil {
		return nil, err
	}
	dbc, err := db.NewDatabaseConnection(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	pg := db.NewWorkspaceStore(dbc)
	return &Stores{Workspaces: pg, Postgres: pg, close: dbc.Close}, nil
}
