package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken    string
	BackendURL  string
	SessionPath string
	HTTPTimeout time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	return &Config{
		BotToken:    getEnv("BOT_TOKEN", ""),
		BackendURL:  getEnv("BACKEND_URL", "https://lets-book.pockethost.io"),
		SessionPath: getEnv("SESSION_PATH", "/tmp/letsbook"),
		HTTPTimeout: getDuration("HTTP_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("invalid %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return d
}
