// Package config loads the tool configuration: where the database
// lives and which settings a fresh seed dataset starts with.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"bluewave/internal/domain"
)

// Config is the YAML configuration file shape.
type Config struct {
	// Database is the path of the SQLite file backing persistence.
	Database string `yaml:"database"`

	// Seed defaults, used only when no saved data exists yet.
	Currency               string `yaml:"currency"`
	LowStockThreshold      int    `yaml:"low_stock_threshold"`
	CriticalStockThreshold int    `yaml:"critical_stock_threshold"`
}

// Default returns the built-in configuration.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		Database:               filepath.Join(home, ".bluewave", "bluewave.db"),
		Currency:               domain.DefaultSettings.Currency,
		LowStockThreshold:      domain.DefaultSettings.LowStockThreshold,
		CriticalStockThreshold: domain.DefaultSettings.CriticalStockThreshold,
	}
}

// Load reads the configuration file at path, overlaying it on the
// defaults. An empty path means defaults only; a named file must
// exist and parse.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Settings converts the seed defaults into a settings singleton.
func (c Config) Settings() domain.Settings {
	return domain.Settings{
		Currency:               c.Currency,
		LowStockThreshold:      c.LowStockThreshold,
		CriticalStockThreshold: c.CriticalStockThreshold,
	}
}
