// Package config loads the ppda CLI configuration from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "ppda.yaml"

// Config is the full CLI configuration.
type Config struct {
	LogLevel string      `yaml:"log_level"`
	Seed     int64       `yaml:"seed"`
	MaxSteps int         `yaml:"max_steps"`
	Workers  int         `yaml:"workers"`
	Listen   string      `yaml:"listen"`
	Store    StoreConfig `yaml:"store"`
}

// StoreConfig selects and configures the sample store.
type StoreConfig struct {
	Driver string      `yaml:"driver"`
	Redis  RedisConfig `yaml:"redis"`
}

// RedisConfig holds connection settings for the redis driver.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Prefix   string        `yaml:"prefix"`
	TTL      time.Duration `yaml:"ttl"`
}

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
		Seed:     42,
		MaxSteps: 100000,
		Workers:  4,
		Listen:   ":8080",
		Store: StoreConfig{
			Driver: DriverMemory,
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "ppda:sample:",
			},
		},
	}
}

// Load reads path on top of the defaults. A missing file is not an error
// and yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Parse decodes YAML into cfg, overriding only the keys present.
// Values are weakly typed ("42" is a valid seed) and durations accept
// strings such as "24h".
func Parse(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	return Decode(raw, cfg)
}

// Decode applies a generic map (from YAML or flags) onto cfg.
func Decode(raw map[string]any, cfg *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "yaml",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// Validate checks the values that have a closed set of options.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverRedis:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("max_steps must not be negative, got %d", c.MaxSteps)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}
