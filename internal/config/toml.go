// Package config provides TOML configuration parsing.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Test TestConfig `toml:"test"`
}

// TestConfig maps test-related settings. Pointer fields distinguish absent
// keys from zero values so flags keep precedence.
type TestConfig struct {
	Time   *int  `toml:"time"`
	Debug  *bool `toml:"debug"`
	Strict *bool `toml:"strict"`
}

// LoadConfig reads a TOML config from the given path. An empty path means
// no config file; a named file that cannot be read is an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, nil
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
