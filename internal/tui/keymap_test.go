package tui

import (
	"testing"

	"mdtodo/internal/config"
)

func TestKeymapFromConfigTranslatesSpace(t *testing.T) {
	km := KeymapFromConfig(config.DefaultConfig().Keymap)

	if km.Toggle.Key != " " {
		t.Errorf("space token must become a space key, got %q", km.Toggle.Key)
	}
	if displayKey(km.Toggle.Key) != "space" {
		t.Errorf("space key must display as 'space', got %q", displayKey(km.Toggle.Key))
	}
}

func TestKeymapActionResolution(t *testing.T) {
	km := KeymapFromConfig(config.DefaultConfig().Keymap)

	cases := []struct {
		key    string
		action string
	}{
		{"q", "quit"},
		{"a", "add"},
		{"e", "edit"},
		{"d", "delete"},
		{" ", "toggle"},
		{"w", "save"},
		{"k", "move_up"},
		{"j", "move_down"},
		{"up", "move_up"},
		{"down", "move_down"},
		{"h", "category_prev"},
		{"l", "category_next"},
		{"left", "category_prev"},
		{"right", "category_next"},
		{"?", "help"},
		{"r", "reload"},
		{"y", "yank"},
		{"z", ""},
	}
	for _, c := range cases {
		if got := km.Action(c.key); got != c.action {
			t.Errorf("Action(%q) = %q, want %q", c.key, got, c.action)
		}
	}
}

func TestKeymapHonorsCustomBindings(t *testing.T) {
	kc := config.DefaultConfig().Keymap
	kc.Quit = "x"
	kc.Toggle = "t"

	km := KeymapFromConfig(kc)
	if km.Action("x") != "quit" {
		t.Error("custom quit binding not honored")
	}
	if km.Action("t") != "toggle" {
		t.Error("custom toggle binding not honored")
	}
	if km.Action("q") != "" {
		t.Error("default quit key should be unbound after remap")
	}
}
