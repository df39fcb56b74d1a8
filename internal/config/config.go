// internal/config/config.go

// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Addr is the listen address for the HTTP/websocket server.
	Addr string
	// LogLevel is a logrus level name.
	LogLevel string
	// HandSize is the number of cards dealt to each player.
	HandSize int
	// RequestsPerTurn is the number of card requests a turn allows.
	RequestsPerTurn int
}

// maxHandSize keeps two players' opening hands inside a single deck.
const maxHandSize = 26

// Load reads a .env file if present, then the process environment.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Addr:            getEnv("SERVER_ADDR", ":8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		HandSize:        getEnvInt("HAND_SIZE", 7, maxHandSize),
		RequestsPerTurn: getEnvInt("REQUESTS_PER_TURN", 2, 255),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt parses key as a positive integer no larger than max. Out-of-range
// values fall back rather than wrap when the caller narrows to uint8.
func getEnvInt(key string, fallback, max int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= max {
			return n
		}
	}
	return fallback
}
