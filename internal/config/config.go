// ABOUTME: Liftlog configuration management.
// ABOUTME: Handles the data directory setting and storage opening.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/liftlog-dev/liftlog/internal/storage"
)

// Config stores liftlog configuration.
type Config struct {
	// DataDir is the root directory for data storage: liftlog.db and the
	// draft/ store live here. Supports ~ expansion for home directory.
	// Defaults to ~/.local/share/liftlog.
	DataDir string `json:"data_dir,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDraftDir returns the directory holding the session draft store.
func (c *Config) GetDraftDir() string {
	return filepath.Join(c.GetDataDir(), "draft")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the SQLite database under the configured data dir.
func (c *Config) OpenStorage() (storage.Repository, error) {
	dbPath := filepath.Join(c.GetDataDir(), "liftlog.db")
	return storage.Open(dbPath)
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "liftlog", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
