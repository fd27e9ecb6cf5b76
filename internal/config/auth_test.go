package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadAuthConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		t.Setenv("JWT_ISSUER", "")
		t.Setenv("JWT_ACCESS_TTL", "")
		t.Setenv("JWT_REFRESH_TTL", "")
		t.Setenv("BCRYPT_COST", "")

		cfg := LoadAuthConfigFromEnv()
		assert.Empty(t, cfg.Secret)
		assert.Equal(t, "teamdesk", cfg.Issuer)
		assert.Equal(t, 15*time.Minute, cfg.AccessTTL)
		assert.Equal(t, 7*24*time.Hour, cfg.RefreshTTL)
		assert.Equal(t, 10, cfg.BcryptCost)
	})

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "top-secret")
		t.Setenv("JWT_ISSUER", "tests")
		t.Setenv("JWT_ACCESS_TTL", "1m")
		t.Setenv("JWT_REFRESH_TTL", "1h")
		t.Setenv("BCRYPT_COST", "4")

		cfg := LoadAuthConfigFromEnv()
		assert.Equal(t, "top-secret", cfg.Secret)
		assert.Equal(t, "tests", cfg.Issuer)
		assert.Equal(t, time.Minute, cfg.AccessTTL)
		assert.Equal(t, time.Hour, cfg.RefreshTTL)
		assert.Equal(t, 4, cfg.BcryptCost)
	})
}

func TestAuthConfig_Validate(t *testing.T) {
	base := AuthConfig{
		Secret:     "0123456789abcdef",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
		BcryptCost: 10,
	}

	tests := []struct {
		name    string
		mutate  func(c *AuthConfig)
		ginMode string
		wantErr string
	}{
		{name: "valid", mutate: func(*AuthConfig) {}, ginMode: "release"},
		{name: "missing secret", mutate: func(c *AuthConfig) { c.Secret = "" }, ginMode: "debug", wantErr: "JWT_SECRET is required"},
		{name: "short secret in release", mutate: func(c *AuthConfig) { c.Secret = "short" }, ginMode: "release", wantErr: "at least"},
		{name: "short secret in debug", mutate: func(c *AuthConfig) { c.Secret = "short" }, ginMode: "debug"},
		{name: "zero access ttl", mutate: func(c *AuthConfig) { c.AccessTTL = 0 }, ginMode: "debug", wantErr: "AccessTTL"},
		{name: "refresh not longer than access", mutate: func(c *AuthConfig) { c.RefreshTTL = c.AccessTTL }, ginMode: "debug", wantErr: "RefreshTTL"},
		{name: "bcrypt cost too low", mutate: func(c *AuthConfig) { c.BcryptCost = 1 }, ginMode: "debug", wantErr: "BCRYPT_COST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate(tt.ginMode)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
