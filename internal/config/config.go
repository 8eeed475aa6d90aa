package config

import (
	"os"
	"strconv"
	"strings"
)

// StoreDriver selects the blob store backend.
const (
	StoreDriverMemory   = "memory"
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
)

// Config holds the process configuration, loaded from the environment.
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string
	HTTPPort    string

	StoreDriver string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	KafkaBrokers []string

	AdminPINHash string
	CashierID    string
}

// Load reads the configuration from environment variables with defaults
// suitable for local development.
func Load() *Config {
	cfg := &Config{
		ServiceName: getEnv("OTEL_SERVICE_NAME", "pos-engine"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),

		StoreDriver: getEnv("STORE_DRIVER", StoreDriverMemory),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPrefix:   getEnv("REDIS_PREFIX", "pos"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "posdb"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AdminPINHash: getEnv("ADMIN_PIN_HASH", ""),
		CashierID:    getEnv("CASHIER_ID", "001"),
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	return cfg
}

// IsDevelopment reports whether the process runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
