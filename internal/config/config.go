package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const devOperatorSecret = "dev-secret-change-in-production"

type Config struct {
	Port           string
	Env            string
	LogLevel       slog.Level
	DatabaseDSN    string
	OperatorSecret string
	TokenExpiry    time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	FingerprintKey []byte
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getLevel("LOG_LEVEL", slog.LevelInfo),
		DatabaseDSN:    getEnv("DATABASE_DSN", ""),
		OperatorSecret: getEnv("OPERATOR_SECRET", devOperatorSecret),
		TokenExpiry:    getDuration("TOKEN_EXPIRY", 24*time.Hour),
		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 20),
	}
	cfg.FingerprintKey = []byte(getEnv("FINGERPRINT_KEY", cfg.OperatorSecret))

	if cfg.IsProduction() && cfg.OperatorSecret == devOperatorSecret {
		slog.Error("OPERATOR_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

// IsProduction reports whether ENV is "production".
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Logger builds the process logger: JSON in production, text elsewhere.
func (c Config) Logger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getLevel(key string, fallback slog.Level) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(os.Getenv(key))); err != nil {
		return fallback
	}
	return level
}
