// Package tui provides the terminal user interface for the todo
// manager.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mdtodo/internal/config"
	"mdtodo/internal/todo"
)

const (
	defaultHint   = "Press ? for help"
	statusTimeout = 3 * time.Second
)

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	store  *todo.Store
	config *config.Config
	keymap Keymap

	// Browsing state
	categoryIdx int
	selectedIdx int

	// Modal state
	dialog   dialogKind
	form     itemForm
	deleteID string

	// Status bar. The generation counter makes the expiry timer
	// one-shot: an expiry message from a superseded status is ignored.
	statusMsg string
	statusGen int

	width, height int
}

// statusExpiredMsg reverts the status bar to the default hint, but only
// when its generation is still current.
type statusExpiredMsg struct{ gen int }

// NewApp creates a new App instance. startupWarning, when non-empty, is
// shown in the status area once the program starts (e.g. a malformed
// keymap config).
func NewApp(store *todo.Store, cfg *config.Config, startupWarning string) *App {
	app := &App{
		store:     store,
		config:    cfg,
		keymap:    KeymapFromConfig(cfg.Keymap),
		statusMsg: defaultHint,
	}
	if startupWarning != "" {
		app.statusMsg = startupWarning
		app.statusGen++
	}
	return app
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	if a.statusMsg != defaultHint {
		return a.expireStatus(a.statusGen)
	}
	return nil
}

// setStatus replaces the status message and schedules its expiry. A
// newer message bumps the generation so any pending expiry is ignored.
func (a *App) setStatus(msg string) tea.Cmd {
	a.statusMsg = msg
	a.statusGen++
	return a.expireStatus(a.statusGen)
}

func (a *App) expireStatus(gen int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusExpiredMsg{gen: gen}
	})
}

// categories returns the sorted category names; never empty.
func (a *App) categories() []string {
	return a.store.SortedCategories()
}

// activeCategory returns the name of the currently selected category.
func (a *App) activeCategory() string {
	cats := a.categories()
	if a.categoryIdx >= len(cats) {
		return cats[0]
	}
	return cats[a.categoryIdx]
}

// activeItems returns the todos of the active category in store order.
func (a *App) activeItems() []*todo.Item {
	return a.store.InCategory(a.activeCategory())
}

// selectedItem returns the highlighted todo, or nil when the active
// category is empty.
func (a *App) selectedItem() *todo.Item {
	items := a.activeItems()
	if len(items) == 0 || a.selectedIdx >= len(items) {
		return nil
	}
	return items[a.selectedIdx]
}

// clampIndices pulls both cursors back into range. Called after every
// mutation that can change the shape of the category list or the
// active item list.
func (a *App) clampIndices() {
	cats := a.categories()
	if a.categoryIdx >= len(cats) {
		a.categoryIdx = len(cats) - 1
	}
	if a.categoryIdx < 0 {
		a.categoryIdx = 0
	}

	n := len(a.activeItems())
	if a.selectedIdx >= n {
		a.selectedIdx = n - 1
	}
	if a.selectedIdx < 0 {
		a.selectedIdx = 0
	}
}

// focusCategory moves the active tab to the named category and
// re-clamps the selection.
func (a *App) focusCategory(category string) {
	for i, c := range a.categories() {
		if c == category {
			a.categoryIdx = i
			break
		}
	}
	a.clampIndices()
}
