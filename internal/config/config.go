// internal/config/config.go
//
// Environment-driven configuration for the server.
// A .env file in the working directory is loaded first (missing file is fine);
// real environment variables always win over .env entries.

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/nickofolas/wdle/internal/words"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// DefaultSessionSecret is only acceptable for local development.
const DefaultSessionSecret = "dev_secret_change_me"

// Config is the full server configuration.
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string // "json" or "console"

	ClientOrigin string
	Production   bool

	Store    string
	RedisURL string
	RoundTTL time.Duration

	SessionSecret string
	SessionTTL    time.Duration
	CookieName    string

	DailySalt string
	Rows      int
	Words     words.Config
}

// Load reads .env (if present) and the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the environment only.
func FromEnv() Config {
	return Config{
		Port:          getEnv("PORT", "5175"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		ClientOrigin:  getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		Production:    os.Getenv("NODE_ENV") == "production",
		Store:         strings.ToLower(getEnv("STORE", StoreMemory)),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379"),
		RoundTTL:      envDuration("ROUND_TTL", 24*time.Hour),
		SessionSecret: getEnv("SESSION_SECRET", DefaultSessionSecret),
		SessionTTL:    time.Duration(envInt("SESSION_TTL_DAYS", 14)) * 24 * time.Hour,
		CookieName:    getEnv("COOKIE_NAME", "wdle_session"),
		DailySalt:     getEnv("DAILY_SALT", "local_dev_salt"),
		Rows:          envInt("ROUND_ROWS", 6),
		Words: words.Config{
			SecretsFile: os.Getenv("WORDS_SECRETS_FILE"),
			GuessesFile: os.Getenv("WORDS_GUESSES_FILE"),
		},
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt parses k as an int, falling back to def when unset or malformed.
func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// envDuration parses k with time.ParseDuration, falling back to def.
func envDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
