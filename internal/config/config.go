package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration. Check thresholds are not
// configurable: they are part of the verification contract.
type Config struct {
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	InputFile    string `env:"INPUT_FILE" envDefault:""`
	PrettyOutput bool   `env:"PRETTY_OUTPUT" envDefault:"false"`
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.InputFile = os.Getenv("INPUT_FILE")
	cfg.PrettyOutput = getEnvBoolWithDefault("PRETTY_OUTPUT", false)

	return &cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
