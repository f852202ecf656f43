// Package config loads application configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	// GitHub
	GitHubToken string
	APIBaseURL  string
}

// Load loads the configuration from environment variables.
func Load() *Config {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		GitHubToken: getEnv("GITHUB_TOKEN", ""),
		APIBaseURL:  getEnv("GITHUB_API_URL", "https://api.github.com"),
	}
}

// GraphQLEndpoint returns the GraphQL endpoint derived from the base URL.
func (c *Config) GraphQLEndpoint() string {
	return c.APIBaseURL + "/graphql"
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.GitHubToken == "" {
		return &ConfigError{Field: "GITHUB_TOKEN", Message: "GitHub token is required"}
	}
	return nil
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
