// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and applies schema migrations.

# Dialects

Two dialects are supported:

  - sqlite (modernc.org/sqlite, pure Go): the default, file path or ":memory:"
  - postgres (github.com/lib/pq)

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

# Migrations

SQL migrations are embedded per dialect under migrations/ and applied with
golang-migrate:

	if err := db.Migrate(ctx, conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call on every start. WithMigrator exposes the migrator for the
migrator command (down, steps, version, force).

# Tables

  - users: id, username (unique), password_hash, created_at
  - polls: id, question, option_a, option_b, created_at
  - votes: id, poll_id, user_id, chosen_option, updated_at

# Relationships

	polls 1──* votes
	users 1──* votes

votes has UNIQUE (poll_id, user_id): at most one live vote per user per poll.
Re-votes update that row in place.
*/
package db
