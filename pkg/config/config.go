// Package config handles loading and saving edugram configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config:  ~/.config/edugram/config.yaml
//   - Data:    ~/.local/share/edugram/ (profile store, exports)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// UIConfig holds UI preference settings.
type UIConfig struct {
	Theme        string `yaml:"theme,omitempty"`         // dark, light
	StartTab     string `yaml:"start_tab,omitempty"`     // home, study, groups, profile
	AutoplayMute bool   `yaml:"autoplay_mute,omitempty"` // start every reel muted
}

// FeedConfig controls feed generation.
type FeedConfig struct {
	LoadMoreCount int `yaml:"load_more_count,omitempty"` // reels appended per load-more
}

// StudyConfig controls study sessions.
type StudyConfig struct {
	ShuffleCards bool `yaml:"shuffle_cards,omitempty"`
}

// Config is the top-level configuration for edugram.
type Config struct {
	StorePath string      `yaml:"store_path,omitempty"` // profile database, ~ expanded
	UI        UIConfig    `yaml:"ui,omitempty"`
	Feed      FeedConfig  `yaml:"feed,omitempty"`
	Study     StudyConfig `yaml:"study,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			Theme:    "dark",
			StartTab: "home",
		},
		Feed: FeedConfig{
			LoadMoreCount: 6,
		},
	}
}

// ConfigDir returns the XDG config directory for edugram.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "edugram")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "edugram")
}

// DataDir returns the XDG data directory for edugram.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "edugram")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "edugram")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// DefaultStorePath returns the profile database path used when the
// config does not set one.
func DefaultStorePath() string {
	dir := DataDir()
	if dir == "" {
		return "edugram.db"
	}
	return filepath.Join(dir, "edugram.db")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Feed.LoadMoreCount <= 0 {
		cfg.Feed.LoadMoreCount = DefaultConfig().Feed.LoadMoreCount
	}
	cfg.StorePath = expandHome(cfg.StorePath)

	return cfg, nil
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// ResolvedStorePath returns the configured store path, falling back to
// the XDG default when unset.
func (c Config) ResolvedStorePath() string {
	if c.StorePath != "" {
		return c.StorePath
	}
	return DefaultStorePath()
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
