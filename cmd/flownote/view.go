package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/avetori/flownote/cmd/flownote/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse and annotate the diagrams interactively",
	Long: `View opens a full-screen terminal UI: pick a diagram, move the cursor
across its nodes, and edit deadlines, notes and sub-nodes in place.`,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()

		p := tea.NewProgram(ui.New(svc), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fatal("UI failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
