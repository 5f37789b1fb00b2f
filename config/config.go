// Package config handles server configuration loading and defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultPort         = 8080
	DefaultDatabasePath = "roster.db"
	DefaultStorageKey   = "opsPlanning"
)

// Config holds the full configuration for the roster server.
type Config struct {
	// Server
	Port int `toml:"port"`

	// Storage
	DatabasePath string `toml:"database_path"` // ":memory:" for in-memory
	StorageKey   string `toml:"storage_key"`

	// HTTP
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		Port:         DefaultPort,
		DatabasePath: DefaultDatabasePath,
		StorageKey:   DefaultStorageKey,
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://localhost:8080",
		},
	}
}

// Load reads a TOML config file, applying defaults for absent fields.
// A missing file is not an error; defaults are returned.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = DefaultDatabasePath
	}
	if cfg.StorageKey == "" {
		cfg.StorageKey = DefaultStorageKey
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = Defaults().AllowedOrigins
	}
	return cfg, nil
}
