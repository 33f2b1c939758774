package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Veraticus/substring-count/pkg/counter"
	"github.com/Veraticus/substring-count/pkg/search"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for substring-count
type Config struct {
	// Search engine used to locate each occurrence
	Engine string `yaml:"engine" env:"SUBSTRING_COUNT_ENGINE"`

	// Behavior for an empty pattern: zero, positions or reject
	EmptyPattern string `yaml:"empty_pattern" env:"SUBSTRING_COUNT_EMPTY_PATTERN"`

	// Debug logging on stderr
	Debug bool `yaml:"debug" env:"SUBSTRING_COUNT_DEBUG"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Engine:       search.EngineStdlib,
		EmptyPattern: counter.EmptyZero.String(),
	}
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	configPath := getConfigPath()
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	// Check for explicit config path
	if path := os.Getenv("SUBSTRING_COUNT_CONFIG"); path != "" {
		return path
	}

	// Check XDG config directory
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "substring-count", "config.yaml")
	}

	// Fall back to home directory
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "substring-count", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (env var, flag or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if engine := os.Getenv("SUBSTRING_COUNT_ENGINE"); engine != "" {
		cfg.Engine = engine
	}

	if policy := os.Getenv("SUBSTRING_COUNT_EMPTY_PATTERN"); policy != "" {
		cfg.EmptyPattern = policy
	}

	if debug := os.Getenv("SUBSTRING_COUNT_DEBUG"); debug != "" {
		switch debug {
		case "true", "1", "yes":
			cfg.Debug = true
		case "false", "0", "no":
			cfg.Debug = false
		default:
			return fmt.Errorf("invalid SUBSTRING_COUNT_DEBUG value: %q (use true/false)", debug)
		}
	}

	return nil
}

// Validate checks that the engine and empty pattern policy are known
func (c *Config) Validate() error {
	if _, err := search.New(c.Engine); err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	if _, err := counter.ParseEmptyPatternPolicy(c.EmptyPattern); err != nil {
		return fmt.Errorf("empty_pattern: %w", err)
	}

	return nil
}

// NewCounter builds the counter described by the configuration
func (c *Config) NewCounter() (*counter.Counter, error) {
	finder, err := search.New(c.Engine)
	if err != nil {
		return nil, err
	}

	policy, err := counter.ParseEmptyPatternPolicy(c.EmptyPattern)
	if err != nil {
		return nil, err
	}

	return counter.New(
		counter.WithFinder(finder),
		counter.WithEmptyPatternPolicy(policy),
	), nil
}
