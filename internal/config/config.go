// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Env             string
	ListenAddr      string
	LogLevel        string
	StoreDriver     string
	DatabaseURL     string
	SQLitePath      string
	DBMaxConns      int32
	AutoMigrate     bool
	OTLPEndpoint    string
	ShutdownTimeout time.Duration
	// CORSAllowedOrigins is empty when cross-origin requests are not served.
	CORSAllowedOrigins []string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads the environment, after loading .env when one exists. There is
// no fallback for DATABASE_URL: the postgres driver refuses to start without it.
func Load() (Config, error) {
	// Existing environment variables win over .env entries.
	_ = godotenv.Load()

	cfg := Config{
		Env:          strings.ToLower(getenv("APP_ENV", "development")),
		ListenAddr:   getenv("LISTEN_ADDR", ":8080"),
		LogLevel:     strings.ToLower(getenv("LOG_LEVEL", "info")),
		StoreDriver:  strings.ToLower(getenv("STORE_DRIVER", DriverPostgres)),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		SQLitePath:   getenv("SQLITE_PATH", "./abuse.db"),
		OTLPEndpoint: os.Getenv("OTLP_ENDPOINT"),

		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	maxConns, err := getenvInt32("DB_MAX_CONNS", 10)
	if err != nil {
		return cfg, err
	}
	if maxConns < 1 {
		return cfg, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", maxConns)
	}
	cfg.DBMaxConns = maxConns

	if cfg.AutoMigrate, err = getenvBool("AUTO_MIGRATE", true); err != nil {
		return cfg, err
	}
	if cfg.ShutdownTimeout, err = getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return cfg, err
	}

	switch cfg.StoreDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return cfg, fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=%s", DriverPostgres)
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			return cfg, fmt.Errorf("SQLITE_PATH is required when STORE_DRIVER=%s", DriverSQLite)
		}
	default:
		return cfg, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, cfg.StoreDriver)
	}
	return cfg, nil
}

func getenvInt32(key string, def int32) (int32, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	out, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return int32(out), nil
}

// splitList splits a comma-separated value, dropping blank entries.
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	out, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return out, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	out, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return out, nil
}
