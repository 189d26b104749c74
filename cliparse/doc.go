// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite file path or PostgreSQL URL (default: feature_voting.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - CORSOrigins: Allowed origins (default: *)
  - LogLevel: debug, info, warn, error (default: info)
  - LogFormat: text or json (default: text)

# Sources

Values are resolved in this order, later sources winning:

 1. envDefault tags on Config
 2. a .env file in the working directory, if present (joho/godotenv)
 3. environment variables (caarlos0/env)
 4. CLI flags

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-cors-origins Comma-separated allowed origins
	-log-level    Log level
	-log-format   Log format

# Environment Variables

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	CORS_ORIGINS  → -cors-origins
	LOG_LEVEL     → -log-level
	LOG_FORMAT    → -log-format

# CORS

The default origin list is "*", which lets any site call the API. That is a
development setting; set CORS_ORIGINS before exposing the server.

# Logging

NewLogger turns LogLevel and LogFormat into a *slog.Logger:

	slog.SetDefault(cliparse.NewLogger(cfg, os.Stderr))
*/
package cliparse
