package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	sl "github.com/14kear/sso-prettyslog/slogpretty/errors"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/logger"
	"github.com/danielhkuo/quickly-vote/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", sl.Err(err))
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", sl.Err(err))
		os.Exit(1)
	}

	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect and migrate
	dbConn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		log.Error("database connection failed", sl.Err(err))
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := db.Migrate(ctx, dbConn, cfg.DatabaseType); err != nil {
		log.Error("migration failed", sl.Err(err))
		os.Exit(1)
	}
	log.Info("Database schema ready", slog.String("type", cfg.DatabaseType))

	// Create router
	handler, err := router.NewRouter(dbConn, cfg, log)
	if err != nil {
		log.Error("router setup failed", sl.Err(err))
		os.Exit(1)
	}

	// Create server
	server := http.Server{
		Handler:           handler,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		// Wait for Ctrl-C or SIGTERM
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", sl.Err(err))
			server.Close()
		}
	}()

	// Start server
	log.Info("Listening", slog.Int("port", cfg.Port), slog.String("env", cfg.Env))
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Server closed", sl.Err(err))
	} else {
		log.Info("Server closed")
	}
}
