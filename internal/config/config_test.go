package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DATABASE", "plugueplus")
	t.Setenv("DB_USERNAME", "plugue")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("APP_DEBUG", "")

	cfg := Load()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "127.0.0.1", cfg.DBHost)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, "utf8mb4", cfg.DBCharset)
	assert.Equal(t, 86400, cfg.JWTTTLSec)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.JWTSecret)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("APP_BASE_PATH", "/plugueplus-api")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("DB_PASSWORD", "s3cr3t")
	t.Setenv("JWT_SECRET", "signing-key")
	t.Setenv("JWT_TTL", "3600")
	t.Setenv("BCRYPT_COST", "12")

	cfg := Load()

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/plugueplus-api", cfg.BasePath)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "s3cr3t", cfg.DBPass)
	assert.Equal(t, "signing-key", cfg.JWTSecret)
	assert.Equal(t, 3600, cfg.JWTTTLSec)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_BOOL", "not-a-bool")
	assert.True(t, envBool("X_BOOL", true))

	t.Setenv("X_INT", "abc")
	assert.Equal(t, 7, envInt("X_INT", 7))

	t.Setenv("X_DUR", "250ms")
	assert.Equal(t, 250*time.Millisecond, envDur("X_DUR", time.Second))

	t.Setenv("X_DUR", "garbage")
	assert.Equal(t, time.Second, envDur("X_DUR", time.Second))
}
