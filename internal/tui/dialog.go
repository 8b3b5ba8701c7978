package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"mdtodo/internal/todo"
)

// dialogKind identifies the active modal; dialogNone means browsing.
// Dialog state is explicit data rather than closures so the state
// machine can be driven and tested without a terminal.
type dialogKind int

const (
	dialogNone dialogKind = iota
	dialogAdd
	dialogEdit
	dialogDelete
	dialogHelp
)

// Field focus inside the add/edit form.
const (
	fieldText = iota
	fieldCategory
)

// itemForm is the add/edit dialog state: a task text input, a category
// input, and the ID of the item being edited (empty while adding).
type itemForm struct {
	Text     textinput.Model
	Category textinput.Model
	Focus    int
	TargetID string
}

func newItemForm(text, category, targetID string) itemForm {
	ti := textinput.New()
	ti.Placeholder = "Task text"
	ti.CharLimit = 200
	ti.Width = 40
	ti.SetValue(text)
	ti.Focus()

	ci := textinput.New()
	ci.Placeholder = todo.DefaultCategory
	ci.CharLimit = 40
	ci.Width = 40
	ci.SetValue(category)

	return itemForm{Text: ti, Category: ci, TargetID: targetID}
}

// toggleFocus moves between the text and category fields.
func (f *itemForm) toggleFocus() {
	if f.Focus == fieldText {
		f.Focus = fieldCategory
		f.Text.Blur()
		f.Category.Focus()
	} else {
		f.Focus = fieldText
		f.Category.Blur()
		f.Text.Focus()
	}
}

// update forwards input to the focused field.
func (f *itemForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.Focus == fieldText {
		f.Text, cmd = f.Text.Update(msg)
	} else {
		f.Category, cmd = f.Category.Update(msg)
	}
	return cmd
}
