// Package config loads user settings for the golox command.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const appName = "golox"

// Config holds the settings read from config.yaml.
type Config struct {
	// Prompt is shown before every REPL line.
	Prompt string `yaml:"prompt"`
	// Print selects a printer mode instead of evaluation. Empty means evaluate.
	Print string `yaml:"print"`
	// History is the REPL history file.
	History string `yaml:"history"`
}

func Default() Config {
	return Config{
		Prompt:  "> ",
		Print:   "",
		History: filepath.Join(xdg.DataHome, appName, ".golox_history"),
	}
}

// Path returns the config file looked up under the XDG config directories.
func Path() (string, error) {
	return xdg.SearchConfigFile(filepath.Join(appName, "config.yaml"))
}

// Load reads path over the defaults. An empty path searches the XDG
// config directories, and finding nothing there leaves the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		found, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	return Parse(data, cfg)
}

// Parse decodes YAML settings on top of base.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("config: %w", err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = base.Prompt
	}
	if cfg.History == "" {
		cfg.History = base.History
	}

	return cfg, nil
}
