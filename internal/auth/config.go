package auth

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AuthConfig holds authentication configuration for the application.
// Token issuance lives with the identity provider; this service only
// validates bearer tokens signed with the shared secret.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	Issuer    string `yaml:"issuer"`
}

// LoadAuthConfig loads and validates authentication configuration from a
// yaml file, with environment overrides for sensitive values.
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	config := &AuthConfig{}

	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("error reading auth config file: %w", err)
			}
			// Config file not found, rely on environment variables
		} else if err := yaml.Unmarshal(raw, config); err != nil {
			return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
		}
	}

	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}
	if issuer := os.Getenv("JWT_ISSUER"); issuer != "" {
		config.Issuer = issuer
	}

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	return nil
}
