package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Estimate EstimateConfig
	App      AppConfig
}

type ServerConfig struct {
	Port           string
	FrontendOrigin string
}

type DatabaseConfig struct {
	// DSN is optional; when empty the project registry runs in memory.
	DSN string
}

type RedisConfig struct {
	// Addr is optional; when empty telemetry events are logged only.
	Addr string
}

type EstimateConfig struct {
	// BaseURL is where the CLI client sends estimate requests.
	BaseURL string
	// TimeoutSeconds bounds a single outbound estimate request.
	TimeoutSeconds int
	// RatePerMinute caps estimate requests per client IP.
	RatePerMinute int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	LogFormat   string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "3001"),
			FrontendOrigin: getEnv("FRONTEND_URL", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			DSN: getEnv("DB_DSN", ""),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", ""),
		},
		Estimate: EstimateConfig{
			BaseURL:        getEnv("ESTIMATE_API_URL", "http://localhost:3001"),
			TimeoutSeconds: getEnvAsInt("ESTIMATE_TIMEOUT_SECONDS", 15),
			RatePerMinute:  getEnvAsInt("ESTIMATE_RATE_PER_MINUTE", 60),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			LogFormat:   getEnv("LOG_FORMAT", "json"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Estimate.TimeoutSeconds <= 0 {
		return fmt.Errorf("ESTIMATE_TIMEOUT_SECONDS must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
