package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the user defaults for the has command line tool. The '--verbose'
// flag replaces the verbosity per invocation and '--bintext' turns bintext on;
// no flag turns a configured bintext default off.
type Config struct {
	// Output settings
	Output struct {
		Bintext bool `toml:"bintext"` // Default to bintext instead of binary.
	} `toml:"output"`

	// Logging settings
	Log struct {
		Verbosity int `toml:"verbosity"` // 0=warn 1=info 2=debug 3=trace.
	} `toml:"log"`
}

// DefaultConfig returns a configuration with default values: binary output and
// warnings only.
func DefaultConfig() *Config {
	return &Config{}
}

// Load reads a TOML configuration from 'path'. An empty path or a missing file
// yields the defaults; a file that exists but does not parse is an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("cannot load config %s: %w", path, err)
	}

	if cfg.Log.Verbosity < 0 || cfg.Log.Verbosity > 3 {
		return nil, fmt.Errorf("config %s: verbosity %d out of range 0-3", path, cfg.Log.Verbosity)
	}

	return cfg, nil
}
