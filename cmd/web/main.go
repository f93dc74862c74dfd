package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"thirdcoast.systems/studio/cmd/web/auth"
	"thirdcoast.systems/studio/cmd/web/internal/web"
	"thirdcoast.systems/studio/internal/application"
	"thirdcoast.systems/studio/internal/config"
	"thirdcoast.systems/studio/internal/logging"
	"thirdcoast.systems/studio/internal/studio"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf, err := config.LoadConfig(ctx)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	_, logCloser := logging.Init(logging.Options{
		Level:  conf.LogLevel,
		Format: conf.LogFormat,
		File:   conf.LogFile,
	})
	defer logCloser.Close()

	slog.Info("Starting web service")

	stores, err := application.OpenStores(ctx, *conf)
	if err != nil {
		slog.Error("failed to open workspace store", "error", err)
		os.Exit(1)
	}
	defer stores.Close()

	svc := studio.NewService(stores.Workspaces, studio.NewHub())

	// Saves made by other instances reach this instance's preview streams.
	if stores.Postgres != nil {
		go stores.Postgres.Relay(ctx, conf.DatabaseDSN, svc)
	}

	if conf.SessionSecret == "" {
		slog.Warn("SESSION_SECRET not set; client ids reset on restart")
	}
	sessionMgr := auth.NewSessionManager(conf.SessionSecret)

	e, err := web.NewWebserver(svc, sessionMgr)
	if err != nil {
		slog.Error("failed to create webserver", "error", err)
		os.Exit(1)
	}

	addr := ":" + strconv.Itoa(conf.WebServerPort)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	slog.Info("Listening", "addr", addr)
	if err := e.Start(addr); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		// Echo returns an error on Shutdown; treat it as normal if context is done.
		if ctx.Err() != nil {
			return
		}
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
