package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadMissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("CIPHER_SECRET", "cipher-secret")

	_, err := Load()
	if !errors.Is(err, ErrMissingJWTSecret) {
		t.Fatalf("Load() error = %v, want ErrMissingJWTSecret", err)
	}
}

func TestLoadMissingCipherSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("CIPHER_SECRET", "")

	_, err := Load()
	if !errors.Is(err, ErrMissingCipherSecret) {
		t.Fatalf("Load() error = %v, want ErrMissingCipherSecret", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("CIPHER_SECRET", "cipher-secret")
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want %q", cfg.Env, "development")
	}
	if cfg.JWTExpiry != time.Hour {
		t.Errorf("JWTExpiry = %v, want %v", cfg.JWTExpiry, time.Hour)
	}
}
