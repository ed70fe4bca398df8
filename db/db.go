// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

//go:embed migrations
var migrationsFS embed.FS

// Open connects to the database and verifies the connection.
// sqlite connections enforce foreign keys and share a single connection,
// which is also what keeps a ":memory:" database alive.
func Open(ctx context.Context, driverType, url string) (*sql.DB, error) {
	var (
		conn *sql.DB
		err  error
	)

	switch driverType {
	case DriverSQLite:
		conn, err = sql.Open("sqlite", sqliteDSN(url))
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		conn.SetMaxOpenConns(1)
	case DriverPostgres:
		conn, err = sql.Open("postgres", url)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported database type %q", driverType)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

func sqliteDSN(url string) string {
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Migrate applies all pending up migrations for the dialect.
// Safe to call on every start - an up-to-date schema is not an error.
func Migrate(ctx context.Context, conn *sql.DB, driverType string) error {
	return WithMigrator(ctx, conn, driverType, func(m *migrate.Migrate) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		return nil
	})
}

// WithMigrator builds a migrator over the embedded migrations for the
// dialect and passes it to fn. The migrator must not be used after fn returns.
//
// The migrator is never closed: closing it would close conn as well.
func WithMigrator(ctx context.Context, conn *sql.DB, driverType string, fn func(*migrate.Migrate) error) error {
	src, err := iofs.New(migrationsFS, "migrations/"+driverType)
	if err != nil {
		return fmt.Errorf("failed to load migrations for %q: %w", driverType, err)
	}

	var drv database.Driver
	switch driverType {
	case DriverSQLite:
		drv, err = sqlite.WithInstance(conn, &sqlite.Config{})
		if err != nil {
			return fmt.Errorf("failed to init sqlite migration driver: %w", err)
		}
	case DriverPostgres:
		// returned to the pool when fn is done
		c, err := conn.Conn(ctx)
		if err != nil {
			return fmt.Errorf("failed to reserve migration connection: %w", err)
		}
		defer c.Close()

		drv, err = postgres.WithConnection(ctx, c, &postgres.Config{})
		if err != nil {
			return fmt.Errorf("failed to init postgres migration driver: %w", err)
		}
	default:
		return fmt.Errorf("unsupported database type %q", driverType)
	}

	m, err := migrate.NewWithInstance("iofs", src, driverType, drv)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	return fn(m)
}
