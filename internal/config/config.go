package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string

	// Database connection parameters. All five are required; there are no
	// defaults for credentials.
	DBHost     string
	DBName     string
	DBUser     string
	DBPassword string
	DBPort     int
	MaxDBConns int32

	RedisURL      string
	StatsCacheTTL time.Duration

	// AllowedOrigins controls HTTP CORS. Empty slice means all origins are
	// permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables. It loads .env if
// present but does not fail if missing. It returns an error naming the
// first missing required database field.
func Load() (*Config, error) {
	_ = godotenv.Load() // Ignore error — .env is optional

	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "pretty"),
		DBHost:         os.Getenv("DB_HOST"),
		DBName:         os.Getenv("DB_NAME"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		MaxDBConns:     int32(getEnvInt("MAX_DB_CONNS", 16)),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),
		StatsCacheTTL:  time.Duration(getEnvInt("STATS_CACHE_TTL_SECONDS", 30)) * time.Second,
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}

	required := []struct {
		key   string
		value string
	}{
		{"DB_HOST", cfg.DBHost},
		{"DB_NAME", cfg.DBName},
		{"DB_USER", cfg.DBUser},
		{"DB_PASSWORD", cfg.DBPassword},
		{"DB_PORT", os.Getenv("DB_PORT")},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, fmt.Errorf("required environment variable %s is not set", r.key)
		}
	}

	port, err := strconv.Atoi(os.Getenv("DB_PORT"))
	if err != nil {
		return nil, fmt.Errorf("DB_PORT must be an integer: %w", err)
	}
	cfg.DBPort = port

	return cfg, nil
}

// DatabaseDSN assembles the Postgres connection string from the discrete
// connection fields.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
