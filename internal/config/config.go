package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joshua-takyi/live/internal/models"
	"github.com/shopspring/decimal"
)

const (
	DriverMemory = "memory"
	DriverBadger = "badger"
	DriverRedis  = "redis"
	DriverMongo  = "mongo"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	// Storage
	StoreDriver     string
	StoreNamespace  string
	BadgerPath      string
	RedisURL        string
	RedisPassword   string
	RedisDB         int
	MongoDBURI      string
	MongoDBPassword string

	// Catalog
	CatalogSeed  uint64
	UserLocation *models.Coordinates

	// Checkout
	ServiceFee decimal.Decimal
	PremiumFee decimal.Decimal
	QRSecret   string

	CORSOrigins     []string
	EnableMetrics   bool
	ShutdownTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		StoreDriver:     strings.ToLower(getEnv("STORE_DRIVER", DriverBadger)),
		StoreNamespace:  getEnv("STORE_NAMESPACE", ""),
		BadgerPath:      getEnv("BADGER_PATH", "./data/badger"),
		RedisURL:        getEnv("REDIS_URL", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvAsInt("REDIS_DB", 0),
		MongoDBURI:      os.Getenv("MONGODB_URI"),
		MongoDBPassword: os.Getenv("MONGODB_PASSWORD"),

		CatalogSeed: getEnvAsUint64("CATALOG_SEED", 0),

		ServiceFee: getEnvAsDecimal("SERVICE_FEE", decimal.NewFromInt(5)),
		PremiumFee: getEnvAsDecimal("PREMIUM_FEE", decimal.NewFromInt(5)),
		QRSecret:   getEnv("QR_SECRET", "spotify-live-dev-secret"),

		CORSOrigins:     getEnvAsList("CORS_ORIGINS", []string{"http://localhost:3000"}),
		EnableMetrics:   getEnvAsBool("ENABLE_METRICS", true),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", "30s"),
	}

	if raw := os.Getenv("USER_LOCATION"); raw != "" {
		var loc models.Coordinates
		if err := loc.Scan(raw); err != nil {
			return nil, fmt.Errorf("USER_LOCATION: %w", err)
		}
		cfg.UserLocation = &loc
	}

	switch cfg.StoreDriver {
	case DriverMemory, DriverBadger, DriverRedis:
	case DriverMongo:
		if cfg.MongoDBURI == "" {
			return nil, fmt.Errorf("MONGODB_URI is required for the mongo store driver")
		}
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q (expected memory, badger, redis, mongo)", cfg.StoreDriver)
	}

	if cfg.ServiceFee.IsNegative() || cfg.PremiumFee.IsNegative() {
		return nil, fmt.Errorf("fees cannot be negative")
	}
	if cfg.IsProduction() && os.Getenv("QR_SECRET") == "" {
		return nil, fmt.Errorf("QR_SECRET is required in production")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseUint(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getEnvAsDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	valueStr := getEnv(key, "")
	if value, err := decimal.NewFromString(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
