package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFirstRunWritesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, warning := Load()
	if warning != "" {
		t.Fatalf("unexpected warning: %s", warning)
	}
	if cfg.Keymap.Quit != "q" || cfg.Keymap.Toggle != "space" {
		t.Errorf("defaults not returned: %+v", cfg.Keymap)
	}

	path, err := ConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("defaults not written on first run: %v", err)
	}
	if !strings.Contains(string(data), "quit: q") {
		t.Errorf("written config missing defaults:\n%s", data)
	}
}

func TestLoadMergesPartialConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "mdtodo")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	partial := "keymap:\n  quit: x\n  save: s\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(partial), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, warning := Load()
	if warning != "" {
		t.Fatalf("unexpected warning: %s", warning)
	}
	if cfg.Keymap.Quit != "x" || cfg.Keymap.Save != "s" {
		t.Errorf("overrides not applied: %+v", cfg.Keymap)
	}
	if cfg.Keymap.Add != "a" || cfg.Keymap.MoveDown != "j" {
		t.Errorf("missing actions must keep defaults: %+v", cfg.Keymap)
	}
}

func TestLoadMalformedFallsBack(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "mdtodo")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("keymap: [not: a map"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, warning := Load()
	if warning == "" {
		t.Error("malformed config must surface a warning")
	}
	if cfg.Keymap.Quit != "q" || cfg.Keymap.Reload != "r" {
		t.Errorf("malformed config must fall back to defaults: %+v", cfg.Keymap)
	}
}
