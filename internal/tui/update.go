package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mdtodo/internal/logging"
	"mdtodo/internal/todo"
)

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case statusExpiredMsg:
		if msg.gen == a.statusGen {
			a.statusMsg = defaultHint
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// handleKey routes keyboard input: each open dialog has its own
// handler; otherwise the keymap drives the browsing actions.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Only ctrl+c is truly global
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.dialog {
	case dialogAdd, dialogEdit:
		return a.handleFormKey(msg)
	case dialogDelete:
		return a.handleDeleteKey(msg)
	case dialogHelp:
		// Any key closes help
		a.dialog = dialogNone
		return a, nil
	}

	return a.handleBrowsingKey(msg)
}

func (a *App) handleBrowsingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := a.keymap.Action(msg.String())
	if action != "" {
		logging.Debug.Debug("key action", "key", msg.String(), "action", action)
	}

	switch action {
	case "quit":
		return a, tea.Quit

	case "save":
		return a, a.saveTodos()

	case "reload":
		return a, a.reloadTodos()

	case "category_prev":
		return a.shiftCategory(-1)

	case "category_next":
		return a.shiftCategory(1)

	case "move_up":
		if a.selectedIdx > 0 {
			a.selectedIdx--
		}
		return a, nil

	case "move_down":
		if a.selectedIdx < len(a.activeItems())-1 {
			a.selectedIdx++
		}
		return a, nil

	case "toggle":
		item := a.selectedItem()
		if item == nil {
			return a, nil
		}
		item.Toggle()
		return a, a.setStatus("Toggled: " + item.Text)

	case "add":
		a.dialog = dialogAdd
		a.form = newItemForm("", a.activeCategory(), "")
		return a, textinput.Blink

	case "edit":
		item := a.selectedItem()
		if item == nil {
			return a, nil
		}
		a.dialog = dialogEdit
		a.form = newItemForm(item.Text, item.Category, item.ID)
		return a, textinput.Blink

	case "delete":
		item := a.selectedItem()
		if item == nil {
			return a, nil
		}
		a.dialog = dialogDelete
		a.deleteID = item.ID
		return a, nil

	case "help":
		a.dialog = dialogHelp
		return a, nil

	case "yank":
		return a.yankSelected()
	}

	return a, nil
}

// shiftCategory moves the category cursor with wraparound and resets
// the selection.
func (a *App) shiftCategory(delta int) (tea.Model, tea.Cmd) {
	cats := a.categories()
	a.categoryIdx = (a.categoryIdx + delta + len(cats)) % len(cats)
	a.selectedIdx = 0
	return a, nil
}

func (a *App) saveTodos() tea.Cmd {
	warnings, err := a.store.Save()
	if err != nil {
		return a.setStatus("Save failed: " + err.Error())
	}
	for _, w := range warnings {
		logging.Debug.Warn("save", "warning", w)
	}
	if len(warnings) > 0 {
		return a.setStatus(warnings[0])
	}
	return a.setStatus("Todos saved successfully!")
}

func (a *App) reloadTodos() tea.Cmd {
	warnings, err := a.store.Load()
	if err != nil {
		return a.setStatus("Reload failed: " + err.Error())
	}
	for _, w := range warnings {
		logging.Debug.Warn("reload", "warning", w)
	}
	a.clampIndices()
	if len(warnings) > 0 {
		return a.setStatus(warnings[0])
	}
	return a.setStatus("Reloaded todos from files")
}

func (a *App) yankSelected() (tea.Model, tea.Cmd) {
	item := a.selectedItem()
	if item == nil {
		return a, nil
	}
	if err := clipboard.WriteAll(item.Markdown()); err != nil {
		return a, a.setStatus("Copy failed: " + err.Error())
	}
	return a, a.setStatus("Copied to clipboard")
}

// handleFormKey drives the add/edit dialog.
func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.dialog = dialogNone
		return a, nil
	case "tab", "shift+tab":
		a.form.toggleFocus()
		return a, nil
	case "enter":
		return a.confirmForm()
	}

	cmd := a.form.update(msg)
	return a, cmd
}

// confirmForm applies the add/edit dialog. A blank add is silently
// discarded; a blank edit is rejected so it can never produce an
// empty-text item.
func (a *App) confirmForm() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(a.form.Text.Value())
	category := sanitizeCategory(a.form.Category.Value())
	if category == "" {
		category = todo.DefaultCategory
	}

	editing := a.dialog == dialogEdit
	a.dialog = dialogNone

	if text == "" {
		if editing {
			return a, a.setStatus("Discarded empty edit")
		}
		return a, nil
	}

	if editing {
		item := a.store.ByID(a.form.TargetID)
		if item == nil {
			return a, nil
		}
		a.store.Edit(item, text, category)
		a.focusCategory(item.Category)
		return a, a.setStatus("Updated: " + text)
	}

	item := a.store.Add(text, category)
	a.focusCategory(item.Category)
	return a, a.setStatus("Added: " + text)
}

// sanitizeCategory keeps a typed category usable as a file name: the
// category becomes "<category>.md" on save, so path separators would
// make every save fail.
func sanitizeCategory(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	return s
}

// handleDeleteKey drives the delete confirmation dialog.
func (a *App) handleDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		a.dialog = dialogNone
		item := a.store.ByID(a.deleteID)
		a.deleteID = ""
		if item == nil {
			return a, nil
		}
		a.store.Delete(item)
		a.clampIndices()
		return a, a.setStatus("Deleted todo")

	case "n", "N", "esc":
		a.dialog = dialogNone
		a.deleteID = ""
		return a, nil
	}

	return a, nil
}
