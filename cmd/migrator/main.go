// Command migrator applies or rolls back schema migrations without starting
// the API server.
//
//	migrator -action up
//	migrator -action down -steps 1
//	migrator -action version -t postgres -d postgres://...
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	sl "github.com/14kear/sso-prettyslog/slogpretty/errors"
	"github.com/golang-migrate/migrate/v4"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/logger"
)

type config struct {
	DatabaseURL  string `env:"DATABASE_URL" env-default:"quickly-vote.db"`
	DatabaseType string `env:"DATABASE_TYPE" env-default:"sqlite"`
	Env          string `env:"APP_ENV" env-default:"local"`
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", sl.Err(err))
	}

	var cfg config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		slog.Error("failed to read environment", sl.Err(err))
		os.Exit(1)
	}

	var (
		action string
		steps  int
	)
	flag.StringVar(&action, "action", "up", "up, down, force, version")
	flag.IntVar(&steps, "steps", 0, "number of steps for up/down, target version for force")
	flag.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "database URL or sqlite file path")
	flag.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "database type: sqlite or postgres")
	flag.Parse()

	log := logger.New(cfg.Env)

	if err := run(context.Background(), cfg, action, steps); err != nil {
		log.Error("migration failed", slog.String("action", action), sl.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, action string, steps int) error {
	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	return db.WithMigrator(ctx, conn, cfg.DatabaseType, func(m *migrate.Migrate) error {
		var err error
		switch action {
		case "up":
			if steps > 0 {
				err = m.Steps(steps)
			} else {
				err = m.Up()
			}
		case "down":
			if steps > 0 {
				err = m.Steps(-steps)
			} else {
				err = m.Down()
			}
		case "force":
			err = m.Force(steps)
		case "version":
			version, dirty, err := m.Version()
			if errors.Is(err, migrate.ErrNilVersion) {
				fmt.Println("Version: none")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("Version: %d, Dirty: %v\n", version, dirty)
			return nil
		default:
			return fmt.Errorf("unknown action %q", action)
		}

		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return err
		}

		fmt.Println("Migration applied")
		return nil
	})
}
