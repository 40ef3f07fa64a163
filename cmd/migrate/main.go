package main

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"portfolio-backend/pkg/logger"
)

// Applies pending .up.sql files from migrations/ in lexical order,
// recording each in schema_migrations.
func main() {
	_ = godotenv.Load()
	logger.Init()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Log.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		logger.Log.Error("connect failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	dir := "migrations"
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		dir = "../migrations"
	}

	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`); err != nil {
		logger.Log.Error("create schema_migrations failed", "error", err)
		os.Exit(1)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Log.Error("read migrations dir failed", "error", err)
		os.Exit(1)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	applied := 0
	for _, filename := range files {
		name := strings.TrimSuffix(filename, ".up.sql")

		var exists bool
		_ = pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE name=$1)", name).Scan(&exists)
		if exists {
			continue
		}

		sql, err := os.ReadFile(filepath.Join(dir, filename))
		if err != nil {
			logger.Log.Error("read migration failed", "migration", name, "error", err)
			os.Exit(1)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			logger.Log.Error("migration failed", "migration", name, "error", err)
			os.Exit(1)
		}
		if _, err := pool.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", name); err != nil {
			logger.Log.Error("record migration failed", "migration", name, "error", err)
			os.Exit(1)
		}
		applied++
		logger.Log.Info("migration applied", "migration", name)
	}

	if applied == 0 {
		logger.Log.Info("all migrations already applied")
	} else {
		logger.Log.Info("migrations completed", "count", applied)
	}
}
