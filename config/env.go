package config

import (
	"os"
	"strings"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment from NODE_ENV, falling
// back to ENV. Unset or unrecognised values mean development.
func GetEnvironment() Environment {
	env := os.Getenv("NODE_ENV")
	if env == "" {
		env = os.Getenv("ENV")
	}

	switch Environment(strings.ToLower(strings.TrimSpace(env))) {
	case Production:
		return Production
	case Test:
		return Test
	default:
		return Development
	}
}

// IsDevelopment returns true if e is the development environment
func (e Environment) IsDevelopment() bool {
	return e == Development
}

// IsTest returns true if e is the test environment
func (e Environment) IsTest() bool {
	return e == Test
}

// IsProduction returns true if e is the production environment
func (e Environment) IsProduction() bool {
	return e == Production
}
