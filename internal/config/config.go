// Package config reads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/mmynk/photobill/internal/calculator"
	"github.com/mmynk/photobill/internal/storage"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Storage  StorageConfig
	Auth     AuthConfig
	Expenses calculator.Expenses
	// DetectSeed fixes the detection stub's random source when set.
	DetectSeed *uint64
}

type ServerConfig struct {
	Port int
}

type LoggerConfig struct {
	Level  string
	Format string
}

type StorageConfig struct {
	Driver      string
	DBPath      string
	DatabaseURL string
	Key         string
}

type AuthConfig struct {
	OwnerPasscode string
	JWTSecret     string
	TokenTTL      time.Duration
}

// Enabled reports whether RPCs require an owner session.
func (a AuthConfig) Enabled() bool {
	return a.OwnerPasscode != ""
}

// Load reads an optional .env file (or the given files) and then the
// process environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvInt("PORT", 8080),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Storage: StorageConfig{
			Driver:      strings.ToLower(getEnv("STORAGE_DRIVER", DriverSQLite)),
			DBPath:      getEnv("DB_PATH", "./data/photobill.db"),
			DatabaseURL: getEnv("DATABASE_URL", ""),
			Key:         getEnv("STORAGE_KEY", storage.DefaultKey),
		},
		Auth: AuthConfig{
			OwnerPasscode: getEnv("OWNER_PASSCODE", ""),
			JWTSecret:     getEnv("JWT_SECRET", ""),
			TokenTTL:      getEnvDuration("TOKEN_TTL", 24*time.Hour),
		},
		Expenses: calculator.Expenses{
			Monthly:         getEnvFloat("MONTHLY_EXPENSES", calculator.DefaultExpenses.Monthly),
			Daily:           getEnvFloat("DAILY_EXPENSES", calculator.DefaultExpenses.Daily),
			PendingPayments: getEnvFloat("PENDING_PAYMENTS", calculator.DefaultExpenses.PendingPayments),
		},
	}

	if value, ok := os.LookupEnv("DETECT_SEED"); ok && value != "" {
		seed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DETECT_SEED %q: %w", value, err)
		}
		cfg.DetectSeed = &seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that have no usable fallback.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite, DriverMemory:
	case DriverPostgres:
		if c.Storage.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.Storage.Key == "" {
		return errors.New("STORAGE_KEY must not be empty")
	}
	if c.Auth.Enabled() && c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required when OWNER_PASSCODE is set")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil && f >= 0 {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
