package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Host        string
	Port        string
	Environment string

	Database DatabaseConfig

	// JWT signing configuration
	SecretKey string
	TokenTTL  time.Duration

	CORSOrigins []string
	SiteBaseURL string

	AutoMigrate   bool
	EnableMetrics bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Load reads the process configuration once at startup. A .env file is
// honored when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	ttlMinutes, err := strconv.Atoi(getEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "30"))
	if err != nil {
		return nil, fmt.Errorf("parse ACCESS_TOKEN_EXPIRE_MINUTES: %w", err)
	}

	cfg := &Config{
		Host:          getEnv("HOST", "127.0.0.1"),
		Port:          getEnv("PORT", "8000"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		Database:      GetDatabaseConfig(),
		SecretKey:     getEnv("SECRET_KEY", "change-this-development-only-secret"),
		TokenTTL:      time.Duration(ttlMinutes) * time.Minute,
		CORSOrigins:   strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000"), ","),
		SiteBaseURL:   getEnv("SITE_BASE_URL", "http://localhost:5173"),
		AutoMigrate:   getEnvBool("AUTO_MIGRATE", false),
		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
	}

	if cfg.IsProduction() && len(cfg.SecretKey) < 32 {
		return nil, fmt.Errorf("SECRET_KEY must be at least 32 characters in production")
	}

	return cfg, nil
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433",
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	return &Config{
		Host:        "127.0.0.1",
		Port:        "8000",
		Environment: "test",
		Database:    *testConfig,
		SecretKey:   "test-secret-key",
		TokenTTL:    30 * time.Minute,
		SiteBaseURL: "http://localhost:5173",
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "tebaba"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
