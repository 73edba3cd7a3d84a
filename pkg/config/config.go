// Package config holds the constants the demos are built around and loads
// overrides for them from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds configuration for the demos
type Config struct {
	// Count is the length of every sequence the demos allocate
	Count int `yaml:"count"`

	// IntValue is stored in the single integer cell
	IntValue int `yaml:"int_value"`

	// RecordA and RecordB are stored in the single record
	RecordA int `yaml:"record_a"`
	RecordB int `yaml:"record_b"`

	// RecordOffset is added to the index to get FieldB in record sequences
	RecordOffset int `yaml:"record_offset"`

	// TraceFile is where `record` saves and `verify` reads the event trace
	TraceFile string `yaml:"trace_file"`
}

// Default returns a Config with default settings
func Default() *Config {
	return &Config{
		Count:        5,
		IntValue:     123,
		RecordA:      123,
		RecordB:      234,
		RecordOffset: 69,
		TraceFile:    "ptrdemo.trace",
	}
}

// Load loads configuration from a YAML file. A missing file (or an empty
// path) yields the defaults. Environment variables override the file:
//   - PTRDEMO_TRACE: path to trace file
//   - PTRDEMO_COUNT: sequence length
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if traceFile := os.Getenv("PTRDEMO_TRACE"); traceFile != "" {
		c.TraceFile = traceFile
	}
	if countStr := os.Getenv("PTRDEMO_COUNT"); countStr != "" {
		var count int
		if _, err := fmt.Sscanf(countStr, "%d", &count); err != nil {
			return fmt.Errorf("invalid PTRDEMO_COUNT %q: %w", countStr, err)
		}
		c.Count = count
	}
	return nil
}

// Validate rejects settings the demos cannot run with.
func (c *Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.Count)
	}
	return nil
}
