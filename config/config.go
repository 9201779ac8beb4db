// Package config loads the codeinsight configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all codeinsight configuration.
type Config struct {
	Tools      ToolsConfig      `yaml:"tools"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
}

// ToolsConfig holds the external analysis tool settings. Paths are resolved
// through PATH when they are bare command names.
type ToolsConfig struct {
	Pylint         string `yaml:"pylint"`
	Bandit         string `yaml:"bandit"`
	Black          string `yaml:"black"`
	TimeoutSeconds int    `yaml:"timeout_seconds"` // per-tool invocation deadline
}

// ThresholdsConfig holds the structural advisory thresholds.
type ThresholdsConfig struct {
	MaxFunctions int `yaml:"max_functions"` // "break into smaller modules" above this
	MaxBranches  int `yaml:"max_branches"`  // "high complexity" above this
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Tools: ToolsConfig{
			Pylint:         "pylint",
			Bandit:         "bandit",
			Black:          "black",
			TimeoutSeconds: 30,
		},
		Thresholds: ThresholdsConfig{
			MaxFunctions: 10,
			MaxBranches:  5,
		},
	}
}

// defaultConfigFile is looked up in the working directory when no explicit
// config path is given.
const defaultConfigFile = "codeinsight.yaml"

// Load reads a YAML config file and fills unset fields with defaults.
// An empty path falls back to codeinsight.yaml in the working directory;
// a missing file at either path yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills any field the config file left at its zero value.
func (c *Config) applyDefaults() {
	def := Default()

	if c.Tools.Pylint == "" {
		c.Tools.Pylint = def.Tools.Pylint
	}
	if c.Tools.Bandit == "" {
		c.Tools.Bandit = def.Tools.Bandit
	}
	if c.Tools.Black == "" {
		c.Tools.Black = def.Tools.Black
	}
	if c.Tools.TimeoutSeconds <= 0 {
		c.Tools.TimeoutSeconds = def.Tools.TimeoutSeconds
	}
	if c.Thresholds.MaxFunctions <= 0 {
		c.Thresholds.MaxFunctions = def.Thresholds.MaxFunctions
	}
	if c.Thresholds.MaxBranches <= 0 {
		c.Thresholds.MaxBranches = def.Thresholds.MaxBranches
	}
}

// Timeout returns the per-tool invocation deadline as a duration.
func (t ToolsConfig) Timeout() time.Duration {
	return time.Duration(t.TimeoutSeconds) * time.Second
}
