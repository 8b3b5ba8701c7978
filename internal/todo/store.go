package todo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Store owns the in-memory todo collection for one root directory.
// Items keep their load/insertion order. The origin map records, per
// item ID, the basename of the file the item was loaded from or last
// saved to; a newly added item has no origin until the first save. The
// files set records every file the store has read or written, so Save
// can clean up a file whose items all moved to another category.
type Store struct {
	dir        string
	items      []*Item
	categories map[string]struct{}
	origin     map[string]string
	files      map[string]struct{}
}

// NewStore creates an empty store rooted at dir. Call Load to populate
// it from disk.
func NewStore(dir string) *Store {
	return &Store{
		dir:        dir,
		categories: map[string]struct{}{DefaultCategory: {}},
		origin:     make(map[string]string),
		files:      make(map[string]struct{}),
	}
}

// TodoDir returns the directory holding the per-category markdown files.
func (s *Store) TodoDir() string {
	return filepath.Join(s.dir, "todo")
}

// Load replaces the in-memory state with the todo files on disk; there
// is no merging with previous state. Files that cannot be read are
// reported as warnings and skipped so one bad file never aborts the
// scan. Only a failure to create the todo directory is an error.
//
// A file's basename supplies the category for lines without a #tag, so
// "work.md" yields "work" items without any embedded tag.
func (s *Store) Load() ([]string, error) {
	s.items = nil
	s.origin = make(map[string]string)
	s.categories = map[string]struct{}{DefaultCategory: {}}
	s.files = make(map[string]struct{})

	dir := s.TodoDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create todo directory: %w", err)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan todo directory: %w", err)
	}

	var warnings []string
	for _, path := range paths {
		name := filepath.Base(path)

		data, err := os.ReadFile(path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipped %s: %v", name, err))
			continue
		}

		s.files[name] = struct{}{}
		fileCategory := strings.TrimSuffix(name, ".md")
		for _, item := range ParseTodos(string(data), fileCategory) {
			s.items = append(s.items, item)
			s.origin[item.ID] = name
			s.categories[item.Category] = struct{}{}
		}
	}

	return warnings, nil
}

// Save writes every item back to disk, one file per category. Origins
// are recomputed from the current category on every save, so changing
// an item's category moves it into "<category>.md" at the next save,
// merging with items already routed there. A previously read or written
// file that no longer receives any items is deleted, otherwise its old
// lines would come back on the next Load.
//
// Files are not locked; concurrent external edits are silently
// overwritten.
func (s *Store) Save() ([]string, error) {
	dir := s.TodoDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create todo directory: %w", err)
	}

	byFile := make(map[string][]*Item)
	var names []string
	for _, item := range s.items {
		name := item.Category + ".md"
		s.origin[item.ID] = name
		if _, ok := byFile[name]; !ok {
			names = append(names, name)
		}
		byFile[name] = append(byFile[name], item)
	}

	var warnings []string
	for name := range s.files {
		if _, ok := byFile[name]; ok {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
			warnings = append(warnings, fmt.Sprintf("failed to remove %s: %v", name, err))
			continue
		}
		delete(s.files, name)
	}

	for _, name := range names {
		category := strings.TrimSuffix(name, ".md")
		content := Serialize(byFile[name], category)
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			warnings = append(warnings, fmt.Sprintf("failed to write %s: %v", name, err))
			continue
		}
		s.files[name] = struct{}{}
	}

	return warnings, nil
}

// Add appends a new not-done todo and registers its category. The item
// has no origin until the next Save.
func (s *Store) Add(text, category string) *Item {
	item := NewItem(text, false, category)
	s.categories[item.Category] = struct{}{}
	s.items = append(s.items, item)
	return item
}

// Edit rewrites an item's text and category in place, registering the
// new category. The category set never shrinks before the next Load,
// even when the old category is left empty.
func (s *Store) Edit(item *Item, text, category string) {
	if category == "" {
		category = DefaultCategory
	}
	item.Text = text
	item.Category = category
	s.categories[category] = struct{}{}
}

// Delete removes an item and its origin record. Deleting an item that
// is not in the store is a no-op.
func (s *Store) Delete(item *Item) {
	if item == nil {
		return
	}
	for i, it := range s.items {
		if it.ID == item.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			delete(s.origin, item.ID)
			return
		}
	}
}

// ByID resolves an item handle. It returns nil for unknown IDs, e.g.
// after the item was deleted or the store reloaded.
func (s *Store) ByID(id string) *Item {
	for _, it := range s.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// InCategory returns the items whose category matches exactly, in
// store order.
func (s *Store) InCategory(category string) []*Item {
	var out []*Item
	for _, it := range s.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// SortedCategories returns every known category in lexicographic order.
// The result is never empty: DefaultCategory is always present.
func (s *Store) SortedCategories() []string {
	out := make([]string, 0, len(s.categories))
	for c := range s.categories {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Items returns all items in store order.
func (s *Store) Items() []*Item {
	return s.items
}

// Origin reports the file an item was loaded from or last saved to.
func (s *Store) Origin(item *Item) (string, bool) {
	name, ok := s.origin[item.ID]
	return name, ok
}
