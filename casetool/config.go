package main

import (
	"fmt"
	"os"

	"github.com/unixpickle/llcases"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by every command.
type Config struct {
	// Cases is the path of the case database.
	Cases string `yaml:"cases"`

	// Indent is used for each nesting level when the case
	// database is rewritten.
	Indent string `yaml:"indent"`

	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`
}

// DefaultConfig returns the configuration used when no
// config file is given.
func DefaultConfig() Config {
	return Config{
		Cases:     "data/oll_cases.json",
		Indent:    llcases.DefaultIndent,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// LoadConfig reads a YAML config file on top of the
// defaults. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Store returns the case store described by the config.
func (c Config) Store() *llcases.FileStore {
	return &llcases.FileStore{Path: c.Cases, Indent: c.Indent}
}
