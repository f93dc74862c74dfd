package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const listenRetryDelay = 2 * time.Second

// ListenDescriptors holds a dedicated connection LISTENing on
// DescriptorChannel and calls fn with each payload. It reconnects on failure
// and returns when ctx is done.
func ListenDescriptors(ctx context.Context, dsn string, fn func(payload string)) {
	for {
		if ctx.Err() != nil {
			return
		}

		// Parse using pgxpool so pool_* DSN params are consumed client-side
		// (otherwise they get forwarded to Postgres as startup params and cause FATAL).
		poolConf, err := pgxpool.ParseConfig(dsn)
		if err != nil {
			slog.Error("listen parse config failed", "channel", DescriptorChannel, "error", err)
			return
		}

		conn, err := pgx.ConnectConfig(ctx, poolConf.ConnConfig)
		if err != nil {
			slog.Error("listen connect failed", "channel", DescriptorChannel, "error", err)
			sleep(ctx, listenRetryDelay)
			continue
		}

		if err := New(conn).ListenWorkspaceDescriptors(ctx); err != nil {
			slog.Error("LISTEN failed", "channel", DescriptorChannel, "error", err)
			_ = conn.Close(context.Background())
			sleep(ctx, listenRetryDelay)
			continue
		}
		slog.Info("listening for descriptor changes", "channel", DescriptorChannel)

		for {
			n, err := conn.WaitForNotification(ctx)
			if err != nil {
				if ctx.Err() == nil {
					slog.Error("wait for notification failed", "channel", DescriptorChannel, "error", err)
				}
				_ = conn.Close(context.Background())
				break
			}
			fn(n.Payload)
		}
		sleep(ctx, listenRetryDelay)
	}
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
