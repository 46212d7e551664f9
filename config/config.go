package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	// Loads a .env file from the working directory, if present, before any
	// variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration for the application
type Config struct {
	Spoonacular SpoonacularConfig `koanf:"spoonacular"`
	Server      ServerConfig      `koanf:"server"`
	Log         LogConfig         `koanf:"log"`

	Environment Environment `koanf:"-"`
}

// SpoonacularConfig holds the upstream recipe API settings
type SpoonacularConfig struct {
	APIKey  string        `koanf:"api_key" validate:"required"`
	BaseURL string        `koanf:"base_url" validate:"required,url"`
	Timeout time.Duration `koanf:"timeout" validate:"min=0"`
}

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Host               string        `koanf:"host"`
	Port               int           `koanf:"port" validate:"min=1,max=65535"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout" validate:"min=0"`
	CORSAllowedOrigins string        `koanf:"cors_allowed_origins"`
}

// LogConfig holds the logger settings
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=trace debug info warn error"`
}

// envKeys maps the environment variables the service reads onto config keys
var envKeys = map[string]string{
	"SPOONACULAR_API_KEY":  "spoonacular.api_key",
	"SPOONACULAR_BASE_URL": "spoonacular.base_url",
	"SPOONACULAR_TIMEOUT":  "spoonacular.timeout",
	"HOST":                 "server.host",
	"PORT":                 "server.port",
	"SHUTDOWN_TIMEOUT":     "server.shutdown_timeout",
	"CORS_ALLOWED_ORIGINS": "server.cors_allowed_origins",
	"LOG_LEVEL":            "log.level",
}

func defaults() map[string]any {
	return map[string]any{
		"spoonacular.base_url":        "https://api.spoonacular.com",
		"spoonacular.timeout":         "0s",
		"server.port":                 3000,
		"server.shutdown_timeout":     "5s",
		"server.cors_allowed_origins": "*",
		"log.level":                   "info",
	}
}

// ConfigFileEnv names the variable holding an optional TOML config file path
const ConfigFileEnv = "CONFIG_FILE"

// LoadConfig loads the configuration, reading the TOML file named by
// CONFIG_FILE when it is set
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(os.Getenv(ConfigFileEnv))
}

// LoadConfigFrom creates a new Config instance from defaults, overlaid with
// the TOML file at path (skipped when empty) and then environment variables,
// and validates it
func LoadConfigFrom(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load default configuration: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// Empty variables are skipped so they do not mask defaults.
	err := k.Load(env.ProviderWithValue("", ".", func(name, value string) (string, any) {
		if value == "" {
			return "", nil
		}
		return envKeys[name], value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.Environment = GetEnvironment()
	cfg.Spoonacular.APIKey = strings.TrimSpace(cfg.Spoonacular.APIKey)

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// ExposeErrors reports whether recovered panic messages may be returned to
// callers verbatim
func (c *Config) ExposeErrors() bool {
	return c.Environment.IsDevelopment()
}

// AllowedOrigins returns the CORS origins as a list
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.Server.CORSAllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
