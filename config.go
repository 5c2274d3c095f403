package main

import (
	"fmt"
	"os"
	"time"
)

// Default catalog feed: a published Google Sheet read through the gviz API.
const defaultFeedURL = "https://docs.google.com/spreadsheets/d/1QWuZx9JoB37GzYd4PmpHspC9Fjgo3FKYZP11VS4Dv9Y/gviz/tq?tqx=out:json"

// Config holds all configuration for the storefront service.
type Config struct {
	Port string
	Env  string

	// Catalog feed
	FeedURL                string
	CatalogRefreshInterval time.Duration // 0 disables periodic refresh

	// Order submission endpoint (Apps Script web app)
	SubmitURL string

	// Cart storage; REDIS_URL empty means the in-memory store
	RedisURL string
	CartTTL  time.Duration

	// Order archive (Postgres)
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string
	PostgresTimeZone string

	// Checkout event fan-out; empty broker list disables Kafka
	KafkaBrokers string
	KafkaTopic   string
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8090"),
		Env:              getEnv("APP_ENV", "production"),
		FeedURL:          getEnv("FEED_URL", defaultFeedURL),
		SubmitURL:        os.Getenv("SUBMIT_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		CartTTL:          time.Hour * 24 * 7,
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		PostgresTimeZone: getEnv("POSTGRES_TIMEZONE", "Asia/Kuala_Lumpur"),
		KafkaBrokers:     os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:       getEnv("KAFKA_TOPIC", "checkout.submitted"),
	}

	if raw := os.Getenv("CATALOG_REFRESH_INTERVAL"); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CATALOG_REFRESH_INTERVAL: %w", err)
		}
		cfg.CatalogRefreshInterval = interval
	}

	if raw := os.Getenv("CART_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid CART_TTL: %w", err)
		}
		cfg.CartTTL = ttl
	}

	if cfg.SubmitURL == "" {
		return nil, fmt.Errorf("SUBMIT_URL is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
