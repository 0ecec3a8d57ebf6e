package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings. Everything is optional; the service
// runs with defaults and keeps no state outside process memory.
type Config struct {
	Port         string
	KafkaBrokers string
	LogLevel     string
}

// Load reads settings from the environment, loading a .env file first
// when one is present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:         getenv("PORT", "8080"),
		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
