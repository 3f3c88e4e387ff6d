package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/teamtodo/internal/app"
	"github.com/idilsaglam/teamtodo/internal/ui"
)

func newChatCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Team chat",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "send <text...>",
		Short: "Post a message as the signed-in user",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usage("usage: todo chat send <text...>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.ctl.Send(strings.Join(args, " ")); err != nil {
				return userError(err)
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:     "ls",
		Aliases: []string{"log"},
		Short:   "Print the chat log",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// chat is shown whatever the active mode
			v := app.View{Chat: a.ctl.ChatLines()}
			for _, line := range ui.ChatLines(v) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	})
	return cmd
}
