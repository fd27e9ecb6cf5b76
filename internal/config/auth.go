package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// minReleaseSecretLength is the shortest JWT secret accepted in release mode.
const minReleaseSecretLength = 16

// AuthConfig holds token issuance and password hashing configuration.
type AuthConfig struct {
	// Secret is the HMAC key used to sign JWTs.
	Secret string
	// Issuer is written to the iss claim.
	Issuer string
	// AccessTTL is the lifetime of access tokens.
	AccessTTL time.Duration
	// RefreshTTL is the lifetime of refresh tokens.
	RefreshTTL time.Duration
	// BcryptCost is the bcrypt work factor for password hashes.
	BcryptCost int
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		Secret:     GetEnv("JWT_SECRET", ""),
		Issuer:     GetEnv("JWT_ISSUER", "teamdesk"),
		AccessTTL:  GetEnvDuration("JWT_ACCESS_TTL", 15*time.Minute),
		RefreshTTL: GetEnvDuration("JWT_REFRESH_TTL", 7*24*time.Hour),
		BcryptCost: GetEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
	}
}

// Validate validates auth configuration. Release mode demands a real secret.
func (c AuthConfig) Validate(ginMode string) error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if ginMode == "release" && len(c.Secret) < minReleaseSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters in release mode", minReleaseSecretLength)
	}
	if c.AccessTTL <= 0 {
		return fmt.Errorf("AccessTTL must be greater than 0")
	}
	if c.RefreshTTL <= c.AccessTTL {
		return fmt.Errorf("RefreshTTL must be greater than AccessTTL")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("invalid BCRYPT_COST: %d (must be between %d and %d)", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}
