package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/quickly-vote/logger"
)

const (
	DefaultPort       = 3001
	DefaultTokenTTL   = 2 * time.Hour
	DefaultBcryptCost = 10
)

type Config struct {
	Port           int           `yaml:"port" env:"PORT" env-default:"3001"`
	DatabaseURL    string        `yaml:"database_url" env:"DATABASE_URL" env-default:"quickly-vote.db"`
	DatabaseType   string        `yaml:"database_type" env:"DATABASE_TYPE" env-default:"sqlite"`
	SigningSecret  string        `yaml:"signing_secret" env:"SIGNING_SECRET"`
	TokenTTL       time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"2h"`
	BcryptCost     int           `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`
	Env            string        `yaml:"env" env:"APP_ENV" env-default:"local"`
	AllowedOrigins []string      `yaml:"cors_origins" env:"CORS_ORIGINS" env-default:"*" env-separator:","`
}

// ParseFlags reads env (or the YAML file named by -config / CONFIG_PATH),
// then applies CLI flags on top and validates the result
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var flags Config
	var configPath string

	fs := flag.NewFlagSet("quickly-vote", flag.ContinueOnError)

	fs.StringVar(&configPath, "config", "", "Path to YAML config file")

	// Network config (can be CLI args or env)
	fs.IntVar(&flags.Port, "p", 0, "Server port")
	fs.StringVar(&flags.DatabaseURL, "d", "", "Database URL or sqlite file path")
	fs.StringVar(&flags.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&flags.SigningSecret, "signing-secret", "", "Session token signing secret (prefer env)")
	fs.IntVar(&flags.BcryptCost, "bcrypt-cost", 0, "bcrypt work factor")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	// Flags win over env and file
	if flags.Port != 0 {
		cfg.Port = flags.Port
	}
	if flags.DatabaseURL != "" {
		cfg.DatabaseURL = flags.DatabaseURL
	}
	if flags.DatabaseType != "" {
		cfg.DatabaseType = flags.DatabaseType
	}
	if flags.SigningSecret != "" {
		cfg.SigningSecret = flags.SigningSecret
	}
	if flags.BcryptCost != 0 {
		cfg.BcryptCost = flags.BcryptCost
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (cfg Config) validate() error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port %d", cfg.Port)
	}

	switch cfg.DatabaseType {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("invalid DATABASE_TYPE %q (want sqlite or postgres)", cfg.DatabaseType)
	}
	if cfg.DatabaseURL == "" {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	// Secrets - MUST be provided
	if strings.TrimSpace(cfg.SigningSecret) == "" {
		return errors.New("SIGNING_SECRET required")
	}

	if cfg.TokenTTL <= 0 {
		return fmt.Errorf("invalid TOKEN_TTL %s", cfg.TokenTTL)
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if !logger.Valid(cfg.Env) {
		return fmt.Errorf("invalid APP_ENV %q (want local, dev or prod)", cfg.Env)
	}

	return nil
}
