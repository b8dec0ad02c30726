// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the server, worker and seeder read from the environment.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	DatabaseURL string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	StoreDriver string

	AMQPURL  string
	APIToken string

	RateLimitMax    int
	RateLimitWindow time.Duration

	PriceFilterMode string

	LogLevel  string
	LogFormat string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	return time.Duration(atoienv(key, defSec)) * time.Second
}

// Load collects configuration from the environment with defaults.
// Callers load .env first (see cmd/server).
func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 15),
		DatabaseURL:     getenv("DATABASE_URL", ""),
		DBUser:          getenv("DB_USER", "postgres"),
		DBPassword:      getenv("DB_PASSWORD", ""),
		DBHost:          getenv("DB_HOST", "localhost"),
		DBPort:          getenv("DB_PORT", "5432"),
		DBName:          getenv("DB_NAME", "ministore"),
		DBSSLMode:       getenv("DB_SSLMODE", "disable"),
		StoreDriver:     strings.ToLower(getenv("STORE_DRIVER", "postgres")),
		AMQPURL:         getenv("AMQP_URL", ""),
		APIToken:        getenv("API_TOKEN", ""),
		RateLimitMax:    atoienv("RATE_LIMIT_MAX", 5),
		RateLimitWindow: durenvs("RATE_LIMIT_WINDOW_SEC", 60),
		PriceFilterMode: strings.ToLower(getenv("PRICE_FILTER_MODE", "any")),
		LogLevel:        strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(getenv("LOG_FORMAT", "text")),
	}
}

// DSN returns DATABASE_URL when set, otherwise a postgres URL built from the DB_* parts.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}
