// Package config provides session token configuration functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// TokenConfig holds configuration for session token signing and validation.
type TokenConfig struct {
	Secret          string
	ExpirationHours int
}

// NewTokenConfig creates a session token configuration from environment
// variables. It reads SESSION_TOKEN_SECRET (required) and
// SESSION_TOKEN_EXPIRATION_HOURS (default: 24).
func NewTokenConfig() (*TokenConfig, error) {
	secret := os.Getenv("SESSION_TOKEN_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_TOKEN_SECRET is required but not set")
	}

	expirationStr := os.Getenv("SESSION_TOKEN_EXPIRATION_HOURS")
	if expirationStr == "" {
		expirationStr = "24"
	}

	expirationHours, err := strconv.Atoi(expirationStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TOKEN_EXPIRATION_HOURS: %v", err)
	}
	if expirationHours < 1 {
		return nil, fmt.Errorf("SESSION_TOKEN_EXPIRATION_HOURS must be at least 1 hour, got: %d", expirationHours)
	}

	return &TokenConfig{
		Secret:          secret,
		ExpirationHours: expirationHours,
	}, nil
}
