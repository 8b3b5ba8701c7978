package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"mdtodo/internal/config"
	"mdtodo/internal/tui/styles"
)

// View implements tea.Model.
func (a *App) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Header.Render(" Markdown Todo Manager "),
		a.renderTabs(),
		a.renderList(),
		styles.StatusBar.Render(a.statusMsg),
	)

	var overlay string
	switch a.dialog {
	case dialogAdd, dialogEdit:
		overlay = a.renderForm()
	case dialogDelete:
		overlay = a.renderDeleteConfirm()
	case dialogHelp:
		overlay = a.renderHelp()
	default:
		return body
	}

	if a.width > 0 && a.height > 0 {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, overlay)
	}
	return overlay
}

func (a *App) renderTabs() string {
	var tabs []string
	for i, category := range a.categories() {
		if i == a.categoryIdx {
			tabs = append(tabs, styles.CategoryTabActive.Render(category))
		} else {
			tabs = append(tabs, styles.CategoryTab.Render(category))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a *App) renderList() string {
	items := a.activeItems()

	maxWidth := a.width - 6
	if maxWidth < 10 {
		maxWidth = 72
	}

	var lines []string
	if len(items) == 0 {
		hint := fmt.Sprintf("No todos in '%s'. Press '%s' to add one.",
			a.activeCategory(), displayKey(a.keymap.Add.Key))
		lines = append(lines, styles.EmptyHint.Render(hint))
	}
	for i, item := range items {
		checkbox := "☐"
		if item.Done {
			checkbox = "☒"
		}
		line := checkbox + " " + fitWidth(item.Text, maxWidth)

		switch {
		case i == a.selectedIdx:
			lines = append(lines, styles.TodoSelected.Render(line))
		case item.Done:
			lines = append(lines, styles.TodoCompleted.Render(line))
		default:
			lines = append(lines, styles.TodoItem.Render(line))
		}
	}

	// Pad so the status bar sits at the bottom of the screen.
	if a.height > 0 {
		used := 3 // header + tab row + status bar
		for len(lines) < a.height-used {
			lines = append(lines, "")
		}
	}

	return strings.Join(lines, "\n")
}

func (a *App) renderForm() string {
	title := "Add Todo"
	if a.dialog == dialogEdit {
		title = "Edit Todo"
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(title) + "\n\n")
	b.WriteString(styles.InputLabel.Render("Task") + "\n")
	b.WriteString(a.form.Text.View() + "\n\n")
	b.WriteString(styles.InputLabel.Render("Category") + "\n")
	b.WriteString(a.form.Category.View() + "\n\n")
	b.WriteString(styles.HelpDesc.Render("Enter: save | Esc: cancel | Tab: switch field"))

	return styles.Dialog.Render(b.String())
}

func (a *App) renderDeleteConfirm() string {
	text := ""
	if item := a.store.ByID(a.deleteID); item != nil {
		text = fitWidth(item.Text, 50)
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Confirm Delete") + "\n\n")
	b.WriteString(fmt.Sprintf("Delete todo: %s?\n\n", text))
	b.WriteString(styles.HelpKey.Render("y") + styles.HelpDesc.Render(": yes  "))
	b.WriteString(styles.HelpKey.Render("n") + styles.HelpDesc.Render(": no"))

	return styles.Dialog.Render(b.String())
}

func (a *App) renderHelp() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts") + "\n\n")

	for _, row := range a.keymap.HelpItems() {
		key, desc := row[0], row[1]
		if desc == "" {
			if key != "" {
				b.WriteString(styles.InputLabel.Render(key) + "\n")
			} else {
				b.WriteByte('\n')
			}
			continue
		}
		b.WriteString(fmt.Sprintf(" %s  %s\n",
			styles.HelpKey.Render(fmt.Sprintf("%-7s", key)), desc))
	}

	if path, err := config.ConfigPath(); err == nil {
		b.WriteString("\n" + styles.HelpDesc.Render("Configuration: "+path) + "\n")
	}
	b.WriteString("\n" + styles.HelpDesc.Render("Press any key to close"))

	return styles.Dialog.Render(b.String())
}

// fitWidth trims s to at most width terminal columns, ending with an
// ellipsis when anything was cut. Widths are measured with runewidth so
// wide characters count as two columns.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
