package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/HenrykHaniewicz/base-converter/internal/tui"
)

// NewTUICommand creates the tui command, the interactive form front-end.
func NewTUICommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "tui",
		Short:         "Interactive conversion form",
		Long:          "Open a terminal form with number, base and precision fields.\nResults update on enter; ctrl+a toggles the all-bases sweep.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(tui.NewModel(), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return WrapExitError(ExitCommandError, "tui failed", err)
			}
			return nil
		},
	}
}
