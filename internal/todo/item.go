// Package todo implements the markdown-backed todo data model.
package todo

import (
	"fmt"

	"github.com/google/uuid"
)

// DefaultCategory groups todos that carry no category of their own.
const DefaultCategory = "uncategorized"

// Item represents a single todo entry. Identity is the generated ID,
// not the content: two items with identical text and category are
// distinct entries.
type Item struct {
	ID       string
	Text     string
	Done     bool
	Category string
}

// NewItem creates a todo item with a fresh ID. An empty category falls
// back to DefaultCategory.
func NewItem(text string, done bool, category string) *Item {
	if category == "" {
		category = DefaultCategory
	}
	return &Item{
		ID:       uuid.NewString(),
		Text:     text,
		Done:     done,
		Category: category,
	}
}

// Toggle flips the done status.
func (it *Item) Toggle() {
	it.Done = !it.Done
}

// Markdown renders the item as a checkbox line.
func (it *Item) Markdown() string {
	mark := " "
	if it.Done {
		mark = "x"
	}
	return fmt.Sprintf("- [%s] %s", mark, it.Text)
}
