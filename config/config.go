package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DatabaseURL    string
	DBDriver       string // sqlite or mysql
	Port           string
	Environment    string
	LogLevel       string
	AutoMigrate    bool
	RequestTimeout time.Duration
	CORSOrigins    string
}

func Load() *Config {
	return &Config{
		DatabaseURL:    getEnv("DATABASE_URL", "comics.db"),
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		Port:           getEnv("PORT", "8081"),
		Environment:    getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AutoMigrate:    getBool("DB_AUTO_MIGRATE", false),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
		CORSOrigins:    getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
