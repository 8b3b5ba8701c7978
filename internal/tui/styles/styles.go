// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
)

// Base styles
var (
	// Header is the application title bar
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#1D4ED8")).
		Padding(0, 1)

	// Title is the style for dialog titles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)
)

// Category tab styles
var (
	CategoryTab = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.AdaptiveColor{Light: "#A36A00", Dark: "#E5C07B"})

	CategoryTabActive = lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(Highlight)
)

// Todo list styles
var (
	// TodoItem is the base style for a todo line
	TodoItem = lipgloss.NewStyle().
			PaddingLeft(2)

	// TodoSelected is the style for the selected todo line
	TodoSelected = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeftForeground(Highlight).
			Bold(true).
			Background(lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A2A"})

	// TodoCompleted is the style for done todos
	TodoCompleted = lipgloss.NewStyle().
			PaddingLeft(2).
			Faint(true).
			Strikethrough(true)

	// EmptyHint is shown when a category has no todos
	EmptyHint = lipgloss.NewStyle().
			PaddingLeft(2).
			Italic(true).
			Foreground(Subtle)
)

// Footer and dialog styles
var (
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.AdaptiveColor{Light: "#8B0000", Dark: "#5F1010"}).
			Padding(0, 1)

	Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)

	InputLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SuccessColor)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)
)
