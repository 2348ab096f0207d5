package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DBDriver       string
	DatabaseURL    string
	SQLitePath     string
	MigrationsPath string
	ListenAddr     string
	DefaultLocale  string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment itself
	// (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{
		DBDriver:       os.Getenv("DB_DRIVER"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SQLitePath:     os.Getenv("SQLITE_PATH"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		ListenAddr:     os.Getenv("LISTEN_ADDR"),
		DefaultLocale:  os.Getenv("DEFAULT_LOCALE"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies defaults and checks the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.DBDriver) == "" {
		c.DBDriver = DriverSQLite
	}
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("config: DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.DBDriver)
	}

	if c.DBDriver == DriverSQLite && strings.TrimSpace(c.SQLitePath) == "" {
		c.SQLitePath = "qrlogger.db"
	}

	if c.DBDriver == DriverPostgres {
		if strings.TrimSpace(c.DatabaseURL) == "" {
			// Useful local default when DATABASE_URL is not provided.
			c.DatabaseURL = "postgres://localhost:5432/qrlogger?sslmode=disable"
		}
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
		}
		if strings.TrimSpace(c.MigrationsPath) == "" {
			c.MigrationsPath = "db/migrations"
		}
	}

	if strings.TrimSpace(c.ListenAddr) == "" {
		c.ListenAddr = ":8080"
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en"
	}

	return nil
}
