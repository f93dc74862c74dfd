package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"thirdcoast.systems/studio/internal/application"
	"thirdcoast.systems/studio/internal/config"
	"thirdcoast.systems/studio/internal/db"
	"thirdcoast.systems/studio/internal/logging"
)

func main() {
	startupCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conf, err := config.LoadConfig(startupCtx)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	_, logCloser := logging.Init(logging.Options{Level: conf.LogLevel, Format: conf.LogFormat, File: conf.LogFile})
	defer logCloser.Close()

	slog.Info("Starting database migrator service")
	if !conf.HasDatabase() {
		slog.Error("DATABASE_DSN is required")
		os.Exit(1)
	}

	pool, err := application.OpenDBPoolWithRetry(startupCtx, *conf)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	slog.Info("Database pool connection established")

	databaseConnection, err := db.NewDatabaseConnection(startupCtx, pool)
	if err != nil {
		slog.Error("failed to create database connection", "error", err)
		os.Exit(1)
	}
	defer databaseConnection.Close()

	plan := db.MigrationPlan{UpTo: conf.MigrateUpTo, DownTo: conf.MigrateDownTo}
	if err := databaseConnection.Migrate(startupCtx, plan); err != nil {
		slog.Error("failed to run PostgreSQL migrations", "error", err)
		os.Exit(1)
	}

	slog.Info("Database migrations completed successfully")
}
