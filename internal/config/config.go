// Package config loads the serve configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Serve holds the settings of the HTTP server. Keys use "mapstructure"
// tags so the YAML file can stay loosely typed (e.g. port as string or int).
type Serve struct {
	Port        int    `mapstructure:"port"`
	RedisAddr   string `mapstructure:"redis_addr"`
	RedisDB     int    `mapstructure:"redis_db"`
	RedisPrefix string `mapstructure:"redis_prefix"`
	Debug       bool   `mapstructure:"debug"`
}

// DefaultServe returns the built-in server settings.
func DefaultServe() Serve {
	return Serve{Port: 8080}
}

// LoadServe reads a YAML config file and decodes it over the defaults.
// Unknown keys are rejected to catch typos early.
func LoadServe(path string) (Serve, error) {
	cfg := DefaultServe()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := make(map[string]any)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return cfg, err
	}
	if err := decoder.Decode(raw); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}
