// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Vote API server.

Quickly Vote is a two-option polling service: users register, log in, create
yes/no style polls, vote on them, change their vote and read live tallies.
Each user holds at most one vote per poll.

# Starting the Server

The only required setting is the token signing secret:

	SIGNING_SECRET=change-me go run .

Or with flags:

	go run . -p 3001 -t postgres -d "postgres://..." -signing-secret change-me

A .env file in the working directory is loaded first when present. Settings
can also come from a YAML file given by -config or CONFIG_PATH.

# Configuration

  - SIGNING_SECRET (-signing-secret): HMAC key for session tokens (required)
  - PORT (-p): Server port (default: 3001)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): sqlite file path or postgres URL (default: quickly-vote.db)
  - TOKEN_TTL: session lifetime (default: 2h)
  - BCRYPT_COST (-bcrypt-cost): password hashing cost (default: 10)
  - APP_ENV: local, dev or prod; selects the log format (default: local)
  - CORS_ORIGINS: comma separated allowed origins (default: *)

Migrations run on start. cmd/migrator applies or rolls them back separately.

# Architecture

  - router: route table, CORS, health check
  - handlers: HTTP request handlers (auth, polls, votes)
  - middleware: request logging, bearer auth, JSON and error helpers
  - accounts: registration and credential verification
  - ledger: polls, votes and tallies
  - auth: bcrypt hashing and JWT session tokens
  - storage/sqlstore: SQL persistence for postgres and sqlite
  - db: connections and embedded migrations
  - apperr: typed errors shared by services and handlers
  - cliparse, logger: configuration and slog setup

See package documentation for each component.
*/
package main
