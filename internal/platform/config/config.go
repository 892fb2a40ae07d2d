package config

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends selectable through STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// DefaultSeedSourceURL is the public product transaction dataset.
const DefaultSeedSourceURL = "https://s3.amazonaws.com/roxiler.com/product_transaction.json"

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	StoreBackend  string
	DatabaseURL   string
	EnableDBCheck bool
	SQLiteDBPath  string

	SeedSourceURL    string
	SeedFetchTimeout time.Duration
	SeedOnStartup    bool
	SeedRateLimit    string

	DefaultMonth       int
	CORSAllowedOrigins []string

	PosthogAPIKey   string
	PosthogEndpoint string

	AMQPURL        string
	AMQPExchange   string
	AMQPRoutingKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_BACKEND", BackendMemory)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("SQLITE_DB_PATH", "product_transactions.db")
	v.SetDefault("SEED_SOURCE_URL", DefaultSeedSourceURL)
	v.SetDefault("SEED_FETCH_TIMEOUT", "15s")
	v.SetDefault("SEED_ON_STARTUP", false)
	v.SetDefault("SEED_RATE_LIMIT", "5-M")
	v.SetDefault("DEFAULT_MONTH", 3)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "product_transactions")
	v.SetDefault("AMQP_ROUTING_KEY", "dataset.seeded")

	v.AutomaticEnv()

	cfg := &Config{
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		StoreBackend:     strings.ToLower(strings.TrimSpace(v.GetString("STORE_BACKEND"))),
		DatabaseURL:      v.GetString("PGSQL_URL"),
		EnableDBCheck:    v.GetBool("ENABLE_DB_CHECK"),
		SQLiteDBPath:     v.GetString("SQLITE_DB_PATH"),
		SeedSourceURL:    v.GetString("SEED_SOURCE_URL"),
		SeedOnStartup:    v.GetBool("SEED_ON_STARTUP"),
		SeedRateLimit:    v.GetString("SEED_RATE_LIMIT"),
		DefaultMonth:     v.GetInt("DEFAULT_MONTH"),
		PosthogAPIKey:    v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:  v.GetString("POSTHOG_ENDPOINT"),
		AMQPURL:          v.GetString("AMQP_URL"),
		AMQPExchange:     v.GetString("AMQP_EXCHANGE"),
		AMQPRoutingKey:   v.GetString("AMQP_ROUTING_KEY"),
		SeedFetchTimeout: 15 * time.Second,
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", v.GetString("LOG_LEVEL"))
		cfg.LogLevel = slog.LevelInfo
	}

	timeoutStr := v.GetString("SEED_FETCH_TIMEOUT")
	if timeout, err := time.ParseDuration(timeoutStr); err == nil && timeout > 0 {
		cfg.SeedFetchTimeout = timeout
	} else if timeoutStr != "" {
		log.Printf("Warning: Invalid value for SEED_FETCH_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, cfg.SeedFetchTimeout)
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	if cfg.PosthogAPIKey == "" {
		log.Println("Warning: POSTHOG_API_KEY not set. Usage analytics disabled.")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	var errs []error
	switch c.StoreBackend {
	case BackendMemory, BackendSQLite:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("PGSQL_URL is required when STORE_BACKEND is postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_BACKEND %q (want memory, postgres or sqlite)", c.StoreBackend))
	}
	if c.StoreBackend == BackendSQLite && c.SQLiteDBPath == "" {
		errs = append(errs, errors.New("SQLITE_DB_PATH is required when STORE_BACKEND is sqlite"))
	}
	if c.DefaultMonth < 0 || c.DefaultMonth > 12 {
		errs = append(errs, fmt.Errorf("DEFAULT_MONTH must be between 0 and 12, got %d", c.DefaultMonth))
	}
	if c.SeedSourceURL == "" {
		errs = append(errs, errors.New("SEED_SOURCE_URL must not be empty"))
	}
	return errors.Join(errs...)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
