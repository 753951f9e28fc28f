// config.go - Handles configuration for the project

package config // Declares the package name

import (
	"os" // For reading environment variables

	"github.com/joho/godotenv" // Loads .env files into the environment
)

type Config struct { // Config struct holds all configuration values
	Port              string // Port the HTTP server listens on
	DBPath            string // Path to the SQLite database file
	JWTSecret         string // Secret key for JWT authentication
	CascadeMenuDelete bool   // Whether deleting a restaurant also deletes its menu
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	_ = godotenv.Load() // Load .env if present; real env vars take precedence

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DBPath:            getEnv("DB_PATH", "data.db"),
		JWTSecret:         getEnv("JWT_SECRET", "supersecret"),
		CascadeMenuDelete: getEnv("CASCADE_MENU_DELETE", "false") == "true",
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
