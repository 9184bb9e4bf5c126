// Package config loads the client's settings.
//
// Resolution order, later wins: built-in defaults, config.yaml next to the
// binary, a .env file in the working directory, NUTRIVIEW_* environment
// variables. A missing or unreadable config file falls back to defaults;
// configuration problems must never stop the client from starting.
package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Aswin-K5/nutriview/pkg/api"
)

// Config holds the client's settings.
type Config struct {
	APIBaseURL  string `yaml:"api_base_url"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	StoragePath string `yaml:"storage_path,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		APIBaseURL: api.DefaultBaseURL,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

func configPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(filepath.Dir(exe), "config.yaml")
}

// Load resolves the effective configuration.
func Load() *Config {
	cfg := Default()

	if data, err := os.ReadFile(configPath()); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			slog.Error("parse config file, using defaults", "err", err)
			cfg = Default()
		}
	}

	// Development convenience, mirrors the backend's .env usage.
	_ = godotenv.Load()

	if v := os.Getenv("NUTRIVIEW_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("NUTRIVIEW_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("NUTRIVIEW_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("NUTRIVIEW_STORAGE_PATH"); v != "" {
		cfg.StoragePath = v
	}

	return cfg
}

// Save writes the configuration back to config.yaml.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0600)
}

// ResolveStoragePath returns the SQLite file the session mirror lives in,
// creating the parent directory if needed. Defaults to the user config
// directory so the login survives reinstalling the binary.
func (c *Config) ResolveStoragePath() (string, error) {
	if c.StoragePath != "" {
		return c.StoragePath, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "nutriview.db", nil //nolint:nilerr // fall back to cwd
	}
	dir := filepath.Join(base, "nutriview")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "nutriview.db"), nil
}
