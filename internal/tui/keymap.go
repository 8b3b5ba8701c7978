package tui

import "mdtodo/internal/config"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains all key bindings, resolved from the user config.
// Key fields hold the string bubbletea reports for the key, not the
// config spelling.
type Keymap struct {
	Quit         Key
	Add          Key
	Edit         Key
	Delete       Key
	Toggle       Key
	Save         Key
	MoveUp       Key
	MoveDown     Key
	CategoryPrev Key
	CategoryNext Key
	Help         Key
	Reload       Key
	Yank         Key
}

// KeymapFromConfig builds the runtime keymap from config key tokens.
func KeymapFromConfig(kc config.KeymapConfig) Keymap {
	return Keymap{
		Quit:         Key{Key: keyToken(kc.Quit), Help: "quit"},
		Add:          Key{Key: keyToken(kc.Add), Help: "add todo"},
		Edit:         Key{Key: keyToken(kc.Edit), Help: "edit todo"},
		Delete:       Key{Key: keyToken(kc.Delete), Help: "delete todo"},
		Toggle:       Key{Key: keyToken(kc.Toggle), Help: "toggle done"},
		Save:         Key{Key: keyToken(kc.Save), Help: "save to files"},
		MoveUp:       Key{Key: keyToken(kc.MoveUp), Help: "move up"},
		MoveDown:     Key{Key: keyToken(kc.MoveDown), Help: "move down"},
		CategoryPrev: Key{Key: keyToken(kc.CategoryPrev), Help: "previous category"},
		CategoryNext: Key{Key: keyToken(kc.CategoryNext), Help: "next category"},
		Help:         Key{Key: keyToken(kc.Help), Help: "help"},
		Reload:       Key{Key: keyToken(kc.Reload), Help: "reload from files"},
		Yank:         Key{Key: keyToken(kc.Yank), Help: "copy to clipboard"},
	}
}

// keyToken translates a config key token into the string bubbletea
// reports for that key.
func keyToken(tok string) string {
	if tok == "space" {
		return " "
	}
	return tok
}

// displayKey is the inverse of keyToken, for help and hint text.
func displayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}

// Action resolves a pressed key to an action name, or "" when the key
// is unbound. Arrow keys are always accepted alongside the configured
// movement bindings.
func (k Keymap) Action(key string) string {
	switch key {
	case k.Quit.Key:
		return "quit"
	case k.Save.Key:
		return "save"
	case k.Reload.Key:
		return "reload"
	case k.Add.Key:
		return "add"
	case k.Edit.Key:
		return "edit"
	case k.Delete.Key:
		return "delete"
	case k.Toggle.Key:
		return "toggle"
	case k.MoveUp.Key, "up":
		return "move_up"
	case k.MoveDown.Key, "down":
		return "move_down"
	case k.CategoryPrev.Key, "left":
		return "category_prev"
	case k.CategoryNext.Key, "right":
		return "category_next"
	case k.Help.Key:
		return "help"
	case k.Yank.Key:
		return "yank"
	}
	return ""
}

// HelpItems returns key-description pairs for the help dialog, in
// display order.
func (k Keymap) HelpItems() [][]string {
	rows := [][]string{
		{"Navigation", ""},
		{displayKey(k.MoveUp.Key) + "/" + displayKey(k.MoveDown.Key), "Move up/down"},
		{displayKey(k.CategoryPrev.Key) + "/" + displayKey(k.CategoryNext.Key), "Previous/next category"},
		{"", ""},
		{"Todo Actions", ""},
		{displayKey(k.Add.Key), "Add new todo"},
		{displayKey(k.Edit.Key), "Edit todo"},
		{displayKey(k.Delete.Key), "Delete todo"},
		{displayKey(k.Toggle.Key), "Toggle done"},
		{displayKey(k.Yank.Key), "Copy todo to clipboard"},
		{"", ""},
		{"General", ""},
		{displayKey(k.Save.Key), "Save todos to files"},
		{displayKey(k.Reload.Key), "Reload todos from files"},
		{displayKey(k.Help.Key), "Toggle help"},
		{displayKey(k.Quit.Key), "Quit"},
	}
	return rows
}
