// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/danielhkuo/quickly-vote/accounts"
	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/handlers"
	"github.com/danielhkuo/quickly-vote/ledger"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/storage/sqlstore"
)

// Banner is the body of GET /
const Banner = "quickly-vote API v1"

const healthTimeout = 2 * time.Second

func NewRouter(db *sql.DB, cfg cliparse.Config, log *slog.Logger) (http.Handler, error) {
	mux := http.NewServeMux()

	// Services
	store := sqlstore.New(db)

	hasher, err := auth.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("password hasher: %w", err)
	}
	sessions, err := auth.NewSessionAuthority(cfg.SigningSecret, auth.WithTTL(cfg.TokenTTL))
	if err != nil {
		return nil, fmt.Errorf("session authority: %w", err)
	}

	credentials := accounts.New(log, store, store, hasher)
	voteLedger := ledger.New(log, store, store)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(credentials, sessions)
	pollHandler := handlers.NewPollHandler(voteLedger)
	votingHandler := handlers.NewVotingHandler(voteLedger)

	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAuth(sessions, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			slog.Error("health check failed", "error", err)
			middleware.ErrorResponse(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts (public)
	mux.HandleFunc("POST /register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))

	// Polls
	mux.HandleFunc("GET /polls", protected(pollHandler.ListPolls))
	mux.HandleFunc("POST /polls", protected(pollHandler.CreatePoll))

	// Votes
	mux.HandleFunc("POST /votes", protected(votingHandler.CastVote))
	mux.HandleFunc("GET /votes/{pollId}", protected(votingHandler.Tally))
	mux.HandleFunc("GET /votes/{pollId}/mine", protected(votingHandler.MyVote))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Banner))
	})

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})

	return c.Handler(mux), nil
}
