package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSecurityConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", strings.Repeat("s", 32))

	cfg, err := LoadSecurityConfig()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Len(t, cfg.JWTSecret, 32)
}

func TestLoadSecurityConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadSecurityConfig()
	assert.Error(t, err)
}

func TestLoadSecurityConfig_ShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "too-short")

	_, err := LoadSecurityConfig()
	assert.Error(t, err)
}

func TestLoadSecurityConfig_WeakSecret(t *testing.T) {
	for _, weak := range []string{"secret", "password123"} {
		t.Setenv("JWT_SECRET", weak)
		_, err := LoadSecurityConfig()
		assert.Error(t, err, "weak secret %q must be rejected", weak)
	}
}

func TestLoadSecurityConfig_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", strings.Repeat("s", 32))
	t.Setenv("JWT_EXPIRES_IN", "7200")
	t.Setenv("BCRYPT_COST", "10")

	cfg, err := LoadSecurityConfig()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestLoadSecurityConfig_CostOutOfRange(t *testing.T) {
	t.Setenv("JWT_SECRET", strings.Repeat("s", 32))

	for _, cost := range []string{"4", "31"} {
		t.Setenv("BCRYPT_COST", cost)
		_, err := LoadSecurityConfig()
		assert.Error(t, err, "cost %s must be rejected", cost)
	}
}
