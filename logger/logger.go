// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package logger builds the process slog.Logger for an environment.
//
//	log := logger.New(cfg.Env)
//	slog.SetDefault(log)
//
// local gets colored human-readable output, dev plain text, prod JSON.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/14kear/sso-prettyslog/slogpretty/slogpretty"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Valid reports whether env names a known environment
func Valid(env string) bool {
	switch env {
	case EnvLocal, EnvDev, EnvProd:
		return true
	}
	return false
}

// New returns a logger writing to stdout
func New(env string) *slog.Logger {
	return NewWithWriter(env, os.Stdout)
}

func NewWithWriter(env string, w io.Writer) *slog.Logger {
	switch env {
	case EnvLocal:
		opts := slogpretty.PrettyHandlerOptions{
			SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
		}
		return slog.New(opts.NewPrettyHandler(w))
	case EnvProd:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
