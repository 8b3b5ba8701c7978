package todo

import (
	"fmt"
	"regexp"
	"strings"
)

// todoPattern matches a checkbox line with an optional trailing
// category tag: "- [x] text #category". The mark is case-insensitive.
var todoPattern = regexp.MustCompile(`^- \[([ xX])\] (.+?)(?:\s+#(\w+))?\s*$`)

// ParseTodos extracts todo items from markdown text. Lines that do not
// match the checkbox grammar (headings, prose, blanks) are skipped, not
// preserved. Items without an embedded #tag get fallbackCategory; when
// that is empty too they end up in DefaultCategory.
func ParseTodos(text, fallbackCategory string) []*Item {
	if fallbackCategory == "" {
		fallbackCategory = DefaultCategory
	}

	var items []*Item
	for _, line := range strings.Split(text, "\n") {
		m := todoPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		category := m[3]
		if category == "" {
			category = fallbackCategory
		}
		items = append(items, NewItem(m[2], strings.EqualFold(m[1], "x"), category))
	}
	return items
}

// Serialize renders items as the content of one per-category file: a
// title heading, then an Active section for not-done items and a
// Completed section for done items, both in their existing relative
// order. Empty sections are omitted. No category tags are written; the
// file itself encodes the category.
func Serialize(items []*Item, category string) string {
	var active, completed []*Item
	for _, it := range items {
		if it.Done {
			completed = append(completed, it)
		} else {
			active = append(active, it)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s Tasks\n\n", titleCase(category))

	if len(active) > 0 {
		b.WriteString("## Active\n\n")
		for _, it := range active {
			b.WriteString(it.Markdown())
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	if len(completed) > 0 {
		b.WriteString("## Completed\n\n")
		for _, it := range completed {
			b.WriteString(it.Markdown())
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
