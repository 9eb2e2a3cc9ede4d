package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds the application configuration.
type Config struct {
	Environment        string
	Port               int
	DatabaseURL        string
	JWTSecret          string
	TokenTTL           time.Duration
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	WorkerCount        int
	BcryptCost         int
	LogLevel           string
	CORSAllowedOrigins []string
	AuthRateLimit      float64
	AuthRateBurst      int
	OTLPEndpoint       string
}

// Load reads configuration from environment variables. DATABASE_URL and
// JWT_SECRET are required.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	port, err := strconv.Atoi(getEnv("PORT", "3001"))
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil || redisDB < 0 {
		return nil, fmt.Errorf("invalid REDIS_DB %q", os.Getenv("REDIS_DB"))
	}

	workers, err := strconv.Atoi(getEnv("WORKER_COUNT", "4"))
	if err != nil || workers <= 0 {
		return nil, fmt.Errorf("invalid WORKER_COUNT %q", os.Getenv("WORKER_COUNT"))
	}

	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", "10"))
	if err != nil || cost < bcrypt.DefaultCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("invalid BCRYPT_COST %q: must be between %d and %d",
			os.Getenv("BCRYPT_COST"), bcrypt.DefaultCost, bcrypt.MaxCost)
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "1h"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_TTL %q", os.Getenv("TOKEN_TTL"))
	}

	rateLimit, err := strconv.ParseFloat(getEnv("AUTH_RATE_LIMIT", "5"), 64)
	if err != nil || rateLimit <= 0 {
		return nil, fmt.Errorf("invalid AUTH_RATE_LIMIT %q", os.Getenv("AUTH_RATE_LIMIT"))
	}

	burst, err := strconv.Atoi(getEnv("AUTH_RATE_BURST", "10"))
	if err != nil || burst <= 0 {
		return nil, fmt.Errorf("invalid AUTH_RATE_BURST %q", os.Getenv("AUTH_RATE_BURST"))
	}

	return &Config{
		Environment:        getEnv("ENVIRONMENT", "development"),
		Port:               port,
		DatabaseURL:        dbURL,
		JWTSecret:          secret,
		TokenTTL:           ttl,
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:            redisDB,
		WorkerCount:        workers,
		BcryptCost:         cost,
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: parseCSVEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		AuthRateLimit:      rateLimit,
		AuthRateBurst:      burst,
		OTLPEndpoint:       os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseCSVEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
