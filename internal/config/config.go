package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	JWTSecret       string
	AdminAPIKey     string
	ServerPort      string
	BaseURL         string
	RealtimeEnabled bool
}

func Load() *Config {
	// Best-effort; env vars win over .env values.
	_ = godotenv.Load()

	return &Config{
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "prizesurvey"),
		JWTSecret:       getEnv("JWT_SECRET", "super-secret-key-change-me"),
		AdminAPIKey:     getEnv("ADMIN_API_KEY", "admin-api-key-change-me"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:3000"),
		RealtimeEnabled: getEnv("REALTIME_ENABLED", "true") == "true",
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
