// Package config handles loading and saving the keymap configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Keymap KeymapConfig `yaml:"keymap"`
}

// KeymapConfig maps action names to single key tokens. Tokens are
// bubbletea key names, with "space" accepted as a spelling for the
// space key.
type KeymapConfig struct {
	Quit         string `yaml:"quit"`
	Add          string `yaml:"add"`
	Edit         string `yaml:"edit"`
	Delete       string `yaml:"delete"`
	Toggle       string `yaml:"toggle"`
	Save         string `yaml:"save"`
	MoveUp       string `yaml:"move_up"`
	MoveDown     string `yaml:"move_down"`
	CategoryPrev string `yaml:"category_prev"`
	CategoryNext string `yaml:"category_next"`
	Help         string `yaml:"help"`
	Reload       string `yaml:"reload"`
	Yank         string `yaml:"yank"`
}

// DefaultConfig returns the built-in Vim-style bindings.
func DefaultConfig() *Config {
	return &Config{
		Keymap: KeymapConfig{
			Quit:         "q",
			Add:          "a",
			Edit:         "e",
			Delete:       "d",
			Toggle:       "space",
			Save:         "w",
			MoveUp:       "k",
			MoveDown:     "j",
			CategoryPrev: "h",
			CategoryNext: "l",
			Help:         "?",
			Reload:       "r",
			Yank:         "y",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "mdtodo")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the keymap configuration. Actions missing from the file
// fall back to the built-in defaults. On first run (no file present)
// the defaults are written out verbatim. A malformed or unreadable file
// falls back entirely to the defaults; the returned warning is meant
// for the status area, never to abort startup.
func Load() (*Config, string) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, fmt.Sprintf("keymap config unavailable: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := Save(cfg); err != nil {
				return cfg, fmt.Sprintf("failed to write default config: %v", err)
			}
			return cfg, ""
		}
		return cfg, fmt.Sprintf("failed to read config file: %v", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Sprintf("malformed config, using defaults: %v", err)
	}

	cfg.Keymap.fillDefaults()
	return cfg, ""
}

// fillDefaults backfills any binding left blank by the on-disk config.
func (k *KeymapConfig) fillDefaults() {
	d := DefaultConfig().Keymap
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&k.Quit, d.Quit)
	fill(&k.Add, d.Add)
	fill(&k.Edit, d.Edit)
	fill(&k.Delete, d.Delete)
	fill(&k.Toggle, d.Toggle)
	fill(&k.Save, d.Save)
	fill(&k.MoveUp, d.MoveUp)
	fill(&k.MoveDown, d.MoveDown)
	fill(&k.CategoryPrev, d.CategoryPrev)
	fill(&k.CategoryNext, d.CategoryNext)
	fill(&k.Help, d.Help)
	fill(&k.Reload, d.Reload)
	fill(&k.Yank, d.Yank)
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
