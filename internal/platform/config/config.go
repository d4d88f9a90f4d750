// Package config loads process-wide settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the API server and batch commands.
type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	JWTSecret string
	JWTExpiry time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	OTPTTL           time.Duration
	OTPRequestLimit  int
	OTPRequestWindow time.Duration

	MenuCacheTTL time.Duration

	AllowedOrigins []string
}

// ErrMissingEnv is returned when a required environment variable is empty.
var ErrMissingEnv = errors.New("required environment variable is not set")

// LoadDotEnv reads .env into the process environment if the file exists.
func LoadDotEnv() {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}
}

// Load builds a Config from environment variables.
// Missing secrets are collected and reported together so startup fails once with the full list.
func Load() (*Config, error) {
	var missing []string
	required := func(key string) string {
		v := os.Getenv(key)
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLevel(getEnv("LOG_LEVEL", "info")),

		JWTSecret: required("JWT_SECRET"),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "24h"), 24*time.Hour),

		SMTPHost:     required("SMTP_HOST"),
		SMTPPort:     parseInt(getEnv("SMTP_PORT", "587"), 587),
		SMTPUsername: required("SMTP_USERNAME"),
		SMTPPassword: required("SMTP_PASSWORD"),
		MailFrom:     required("MAIL_FROM"),

		OTPTTL:           parseDuration(getEnv("OTP_TTL", "10m"), 10*time.Minute),
		OTPRequestLimit:  parseInt(getEnv("OTP_REQUEST_LIMIT", "5"), 5),
		OTPRequestWindow: parseDuration(getEnv("OTP_REQUEST_WINDOW", "15m"), 15*time.Minute),

		MenuCacheTTL: parseDuration(getEnv("MENU_CACHE_TTL", "5m"), 5*time.Minute),

		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(missing, ", "))
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func parseInt(value string, defaultValue int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func parseLevel(value string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
