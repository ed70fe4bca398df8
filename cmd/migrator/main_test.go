package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/quickly-vote/db"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	cfg := config{
		DatabaseURL:  filepath.Join(t.TempDir(), "migrator.db"),
		DatabaseType: db.DriverSQLite,
	}

	steps := []struct {
		action string
		steps  int
	}{
		{"version", 0},
		{"up", 0},
		{"up", 0}, // no change is not an error
		{"version", 0},
		{"down", 1},
		{"up", 1},
		{"force", 1},
	}

	for _, s := range steps {
		if err := run(ctx, cfg, s.action, s.steps); err != nil {
			t.Fatalf("%s %d: unexpected error: %v", s.action, s.steps, err)
		}
	}

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	defer conn.Close()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM polls").Scan(&n); err != nil {
		t.Errorf("Expected polls table after up: %v", err)
	}
}

func TestRun_UnknownAction(t *testing.T) {
	cfg := config{
		DatabaseURL:  filepath.Join(t.TempDir(), "migrator.db"),
		DatabaseType: db.DriverSQLite,
	}

	if err := run(context.Background(), cfg, "sideways", 0); err == nil {
		t.Error("Expected error for unknown action")
	}
}

func TestRun_UnsupportedDriver(t *testing.T) {
	cfg := config{DatabaseURL: "x", DatabaseType: "mysql"}

	if err := run(context.Background(), cfg, "up", 0); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}
