// cmd/profile360/main.go
//
// This is the entry point for the profile360 CLI.
// Running `profile360` from any directory starts the onboarding wizard
// for that directory's community project.

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ganghq/profile360/internal/tui"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "profile360",
		Short: "Interactive member-profile onboarding",
		Long: "profile360 walks a new community member through building their\n" +
			"profile: the basics, their coordinates, and the three life stories.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard()
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the profile360 version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("profile360 %s\n", version)
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runWizard() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	app, err := tui.NewApp(cwd)
	if err != nil {
		return fmt.Errorf("initializing onboarding: %w", err)
	}

	// tea.NewProgram creates a new bubbletea application; Run blocks
	// until the user quits.
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
