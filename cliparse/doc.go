// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3001)
  - DatabaseURL: sqlite file path or PostgreSQL connection string (default: quickly-vote.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - SigningSecret: Session token signing secret (required)
  - TokenTTL: Session token lifetime (default: 2h)
  - BcryptCost: Password hashing work factor (default: 10)
  - Env: local, dev or prod; selects the log format (default: local)
  - AllowedOrigins: CORS origins (default: *)

# CLI Flags

	-config           YAML config file
	-p                Server port
	-d                Database URL
	-t                Database type
	--signing-secret  Session token signing secret
	--bcrypt-cost     bcrypt work factor

# Environment Variables

Values are read with cleanenv, either from the environment or from the YAML
file named by -config / CONFIG_PATH (environment still wins over the file):

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	SIGNING_SECRET → --signing-secret
	BCRYPT_COST    → --bcrypt-cost
	TOKEN_TTL
	APP_ENV
	CORS_ORIGINS   (comma separated)

CLI flags take precedence over environment variables. main loads a .env file
with godotenv before calling ParseFlags.

# Validation

ParseFlags returns an error if:

  - SIGNING_SECRET is missing or blank
  - DATABASE_TYPE is not sqlite or postgres
  - BCRYPT_COST is outside bcrypt's range
  - TOKEN_TTL is not positive
  - APP_ENV is not local, dev or prod
*/
package cliparse
