package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "JWT_SECRET", "TOKEN_TTL", "BCRYPT_COST"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.NotEmpty(t, cfg.JWTSecret, "development runs get a generated secret")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "test")
	t.Setenv("JWT_SECRET", "configured-secret")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("BCRYPT_COST", "12")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "configured-secret", cfg.JWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoadGeneratedSecretsDiffer(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("JWT_SECRET", "")

	first := Load().JWTSecret
	second := Load().JWTSecret
	assert.NotEqual(t, first, second, "fallback secret must not be a known constant")
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("TOKEN_TTL", "soon")
	t.Setenv("BCRYPT_COST", "not-a-number")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestLoadBcryptCostOutOfRange(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("BCRYPT_COST", "99")

	cfg := Load()
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
}

func TestLoadNegativeTTLFallsBack(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("TOKEN_TTL", "-5m")

	cfg := Load()
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}
