package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

func homeDirOrFallback() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return home
}

// Config holds all user-configurable settings.
type Config struct {
	// BaseURL is the root URL of the host application.
	BaseURL string `json:"base_url"`
	// Family selects which preset family the organizer operates on.
	Family string `json:"family"`
	// RequestsPerSecond rate-limits HTTP requests to the host.
	RequestsPerSecond float64 `json:"requests_per_second"`
	// DataDir is where the sidecar database and log file live.
	DataDir string `json:"data_dir"`
	// LogLevel controls zerolog verbosity (debug, info, warn, error).
	LogLevel string `json:"log_level"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:           "http://127.0.0.1:8000",
		Family:            "default",
		RequestsPerSecond: 5.0,
		DataDir:           ConfigDir(),
		LogLevel:          "info",
	}
}

// ConfigDir returns the directory where config and data files are stored.
func ConfigDir() string {
	if dir := os.Getenv("PRESETDECK_CONFIG_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(homeDirOrFallback(), ".config", "presetdeck")
}

// DBPath returns the path to the sidecar SQLite database.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "sidecar.db")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// Load reads config from disk, returning defaults if the file doesn't exist.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			if err := cfg.Save(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.DataDir == "" {
		cfg.DataDir = ConfigDir()
	}
	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(ConfigDir(), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigPath(), data, 0o644)
}
