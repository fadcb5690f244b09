package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level benchscope.yml configuration.
type Config struct {
	Version string                `yaml:"version"`
	Store   StoreConfig           `yaml:"store"`
	Cache   *CacheConfig          `yaml:"cache,omitempty"`
	Scorers map[string]string     `yaml:"scorers,omitempty"` // task path → scorer identifier
	Cohorts map[string]CohortSpec `yaml:"cohorts,omitempty"` // cohort name → selection spec
}

// StoreConfig points at the remote benchmark record store.
type StoreConfig struct {
	BaseURL  string `yaml:"base_url"`            // Required: root URL of the record store API
	TokenEnv string `yaml:"token_env,omitempty"` // Env var holding the bearer token (default: BENCHSCOPE_TOKEN)
}

// CacheConfig controls the Redis snapshot cache. Omitting the cache section
// disables caching entirely.
type CacheConfig struct {
	Enabled   bool   `yaml:"enabled"`
	RedisAddr string `yaml:"redis_addr,omitempty"` // Default: localhost:6379
	TTL       string `yaml:"ttl,omitempty"`        // Go duration string, default: 1h
}

// CohortSpec selects a named group of models for comparison.
type CohortSpec struct {
	Prefixes []string `yaml:"prefixes,omitempty"` // model_id prefixes
	Models   []string `yaml:"models,omitempty"`   // explicit model_ids
	Exclude  []string `yaml:"exclude,omitempty"`  // disqualifying model_id substrings
}

const (
	defaultTokenEnv  = "BENCHSCOPE_TOKEN"
	defaultRedisAddr = "localhost:6379"
	defaultCacheTTL  = time.Hour
)

// Validate performs strict validation on the configuration and applies
// defaults for optional fields.
func (c *Config) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	// Required: store base URL
	if c.Store.BaseURL == "" {
		return fmt.Errorf("store.base_url is required")
	}
	if c.Store.TokenEnv == "" {
		c.Store.TokenEnv = defaultTokenEnv
	}

	if c.Cache != nil && c.Cache.Enabled {
		if c.Cache.RedisAddr == "" {
			c.Cache.RedisAddr = defaultRedisAddr
		}
		if c.Cache.TTL == "" {
			c.Cache.TTL = defaultCacheTTL.String()
		}
		if _, err := time.ParseDuration(c.Cache.TTL); err != nil {
			return fmt.Errorf("cache.ttl is not a valid duration: %q", c.Cache.TTL)
		}
	}

	// Scorer mapping entries must name both sides
	for taskPath, scorer := range c.Scorers {
		if taskPath == "" {
			return fmt.Errorf("scorers: empty task path")
		}
		if scorer == "" {
			return fmt.Errorf("scorers: no scorer for task %s", taskPath)
		}
	}

	// A cohort with no selectors can never match anything
	for name, spec := range c.Cohorts {
		if len(spec.Prefixes) == 0 && len(spec.Models) == 0 {
			return fmt.Errorf("cohort '%s': at least one of prefixes or models is required", name)
		}
	}

	return nil
}

// CacheTTL returns the parsed cache TTL. Only valid after Validate.
func (c *Config) CacheTTL() time.Duration {
	if c.Cache == nil || c.Cache.TTL == "" {
		return defaultCacheTTL
	}
	ttl, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return defaultCacheTTL
	}
	return ttl
}

// Token resolves the record store bearer token from the configured
// environment variable. An empty result is allowed (open stores).
func (c *Config) Token() string {
	return os.Getenv(c.Store.TokenEnv)
}

// Load reads and validates benchscope.yml from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}
