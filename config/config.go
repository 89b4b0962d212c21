package config

import (
	"os"
	"strings"
)

// The admin pair is a known-insecure fallback for local runs; main logs a
// warning when it is still in use.
const (
	DefaultAdminUser = "admin"
	DefaultAdminPass = "admin123"
)

type Config struct {
	Port   string
	DBPath string

	AdminUser string
	AdminPass string

	// Kafka is optional; empty brokers disable event publishing.
	KafkaBrokers []string
	KafkaTopic   string
}

func Load() *Config {
	return &Config{
		Port:         getEnv("APP_PORT", "3001"),
		DBPath:       getEnv("DB_PATH", "store.db"),
		AdminUser:    getEnv("ADMIN_USER", DefaultAdminUser),
		AdminPass:    getEnv("ADMIN_PASS", DefaultAdminPass),
		KafkaBrokers: splitAndTrim(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   getEnv("KAFKA_TOPIC_ORDERS", "storefront.orders"),
	}
}

// AdminCredentialsAreDefault reports whether the hard-coded fallback pair is
// still active.
func (c *Config) AdminCredentialsAreDefault() bool {
	return c.AdminUser == DefaultAdminUser && c.AdminPass == DefaultAdminPass
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}
