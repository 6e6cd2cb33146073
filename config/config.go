package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config reads an env var, loading .env once on first use.
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}
	return os.Getenv(key)
}

// ConfigDefault reads an env var with a fallback value.
func ConfigDefault(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
