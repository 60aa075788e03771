package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/state"
	"github.com/alexisbeaulieu97/themekit/internal/tui"
)

var errNotInteractive = errors.New("demo requires an interactive terminal")

var (
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	demoRunner = func(store *state.Store, toggles config.Toggles) error {
		return tui.Run(store, toggles, tea.WithAltScreen())
	}
)

func newDemoCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive component demo",
		Long: `Demo mounts buttons and headings on one shared store. Pressing a
language, size or theme button re-renders every mounted component.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errNotInteractive
			}
			p, err := loadProvider(cmd, root)
			if err != nil {
				return err
			}
			return demoRunner(p.Store(), p.Config().Toggles)
		},
	}
}
