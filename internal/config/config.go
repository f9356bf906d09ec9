package config

import (
	"errors"
	"os"
	"time"
)

var (
	ErrMissingJWTSecret    = errors.New("JWT_SECRET is required")
	ErrMissingCipherSecret = errors.New("CIPHER_SECRET is required")
)

// Config holds process-wide configuration. The signing and cipher
// secrets are read once at startup; their absence is fatal, never a
// per-request condition.
type Config struct {
	Port         string
	Env          string
	DatabaseDSN  string
	JWTSecret    string
	JWTExpiry    time.Duration
	CipherSecret string
}

func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		DatabaseDSN:  getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/drivenpass?parseTime=true"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTExpiry:    time.Hour,
		CipherSecret: os.Getenv("CIPHER_SECRET"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}
	if cfg.CipherSecret == "" {
		return Config{}, ErrMissingCipherSecret
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
