// Package config loads and validates application configuration at startup.
package config

import (
	"fmt"
	"os"
	"time"

	pkgconfig "news-cms/pkg/config"
)

const (
	// minJWTSecretLength enforces at least 256 bits of signing secret.
	minJWTSecretLength = 32

	defaultTokenTTL   = time.Hour
	defaultBcryptCost = 12
	minBcryptCost     = 10
	maxBcryptCost     = 15
)

// SecurityConfig holds the authentication settings for the process.
type SecurityConfig struct {
	// JWTSecret is the process-wide HMAC signing secret.
	JWTSecret []byte
	// TokenTTL is the fixed expiry window for issued tokens.
	TokenTTL time.Duration
	// BcryptCost is the bcrypt cost factor for password hashing. The range
	// is clamped so verification stays in the tens-of-milliseconds band.
	BcryptCost int
}

// LoadSecurityConfig reads the security configuration from the environment
// and validates it. The server must not start with a missing or weak secret.
func LoadSecurityConfig() (*SecurityConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	if len(secret) < minJWTSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d characters (256 bits)", minJWTSecretLength)
	}
	// よくある弱い秘密鍵を拒否
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			return nil, fmt.Errorf("JWT_SECRET must not be a common weak value")
		}
	}

	ttlSeconds := pkgconfig.GetEnvInt("JWT_EXPIRES_IN", int(defaultTokenTTL.Seconds()))
	if ttlSeconds <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRES_IN must be positive, got %d", ttlSeconds)
	}

	cost := pkgconfig.GetEnvInt("BCRYPT_COST", defaultBcryptCost)
	if cost < minBcryptCost || cost > maxBcryptCost {
		return nil, fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", minBcryptCost, maxBcryptCost, cost)
	}

	return &SecurityConfig{
		JWTSecret:  []byte(secret),
		TokenTTL:   time.Duration(ttlSeconds) * time.Second,
		BcryptCost: cost,
	}, nil
}
