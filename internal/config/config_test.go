package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "5000", cfg.App.HTTPPort)
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 5.0, cfg.RateLimit.RequestsPerSecond)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 300, cfg.Redis.CacheTTL)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("AUTH_JWT_SECRET", "sekrit")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, "sekrit", cfg.Auth.JWTSecret)
}

func TestConfig_Validate(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	// The secret has no default on purpose.
	cfg.Auth.JWTSecret = ""
	assert.Error(t, cfg.Validate())

	cfg.Auth.JWTSecret = "sekrit"
	assert.NoError(t, cfg.Validate())

	cfg.Auth.TokenTTLHours = 0
	assert.Error(t, cfg.Validate())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "app",
		Password: "pw",
		Name:     "taskflow",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal user=app password=pw dbname=taskflow port=5433 sslmode=require",
		db.DSN())
}
