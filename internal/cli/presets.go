package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/teamtodo/internal/due"
)

func newPresetsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "Show due-date shortcuts resolved against today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.ctl.Now()
			w := cmd.OutOrStdout()
			for _, p := range due.Presets {
				date, err := due.Resolve(p.Key, now)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%-11s %-12s %s\n", p.Key, p.Label, date)
			}
			fmt.Fprintf(w, "times: hours 00-23, minutes %s\n", strings.Join(due.Minutes, "/"))
			return nil
		},
	}
}
