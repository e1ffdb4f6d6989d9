// Package config loads server settings from an optional YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries everything the server needs at startup.
type Config struct {
	Addr       string `yaml:"addr"`
	TickMillis int    `yaml:"tick_millis"`
	AreasPath  string `yaml:"areas_path"`
	StartRoom  int    `yaml:"start_room"`
}

// Default returns the settings used when no file or flag overrides them.
func Default() Config {
	return Config{
		Addr:       ":8000",
		TickMillis: 1000,
		AreasPath:  "data/areas",
		StartRoom:  1,
	}
}

// Load reads a YAML config file and fills unset fields from the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if file.Addr != "" {
		cfg.Addr = file.Addr
	}
	if file.TickMillis > 0 {
		cfg.TickMillis = file.TickMillis
	}
	if file.AreasPath != "" {
		cfg.AreasPath = file.AreasPath
	}
	if file.StartRoom > 0 {
		cfg.StartRoom = file.StartRoom
	}
	return cfg, nil
}
