// Package main is the entry point for the markdown todo manager.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"mdtodo/internal/config"
	"mdtodo/internal/logging"
	"mdtodo/internal/todo"
	"mdtodo/internal/tui"
)

const version = "0.1.0"

var dirFlag string

var rootCmd = &cobra.Command{
	Use:   "mdtodo",
	Short: "Markdown Todo Manager with Vim-like keybindings",
	Long: `mdtodo is a terminal todo manager that keeps its database as a
directory of plain markdown files: one human-editable, git-friendly
task list per category. Keybindings are configurable in
~/.config/mdtodo/config.yaml.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(dirFlag)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&dirFlag, "dir", "d", "~/mdtodo",
		"directory to store todo files")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(dir string) error {
	store := todo.NewStore(expandHome(dir))

	// Inability to create the todo directory is the one startup error
	// that aborts before the interactive loop.
	warnings, err := store.Load()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logging.Debug.Warn("load", "warning", w)
	}

	cfg, cfgWarning := config.Load()

	startupWarning := cfgWarning
	if startupWarning == "" && len(warnings) > 0 {
		startupWarning = warnings[0]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := tui.NewApp(store, cfg, startupWarning)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			// Interrupted: persist best-effort before exiting.
			if _, serr := store.Save(); serr != nil {
				logging.Debug.Error("save on interrupt", "err", serr)
			} else {
				fmt.Println("Todos saved. Goodbye!")
			}
			return nil
		}
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// expandHome resolves a leading "~" against the user's home directory.
func expandHome(dir string) string {
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(dir, "~"))
		}
	}
	return dir
}
