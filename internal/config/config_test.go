package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Port:       "8490",
		JWTSecret:  "a-development-secret-that-is-long-enough",
		DBPassword: "password",
		Env:        "development",
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("development defaults pass", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := validConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects the default secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects a short secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "short-secret"
		cfg.DBPassword = "s3curePassw0rd"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects the default db password", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("hardened production passes", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		cfg.DBPassword = "s3curePassw0rd"
		cfg.DBSSLMode = "require"
		assert.NoError(t, cfg.Validate())
	})
}
