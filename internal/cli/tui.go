package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/teamtodo/internal/tui"
)

func newTUICmd(a *App) *cobra.Command {
	var inline bool
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive list (space toggle, d delete, a add, t team, c chat, q quit)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []tea.ProgramOption{
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			}
			if !inline {
				opts = append(opts, tea.WithAltScreen())
			}
			a.log.Debug("starting tui", "mode", a.ctl.Mode())
			return tui.Run(a.ctl, opts...)
		},
	}
	cmd.Flags().BoolVar(&inline, "inline", false, "Draw below the prompt instead of the alternate screen")
	return cmd
}
