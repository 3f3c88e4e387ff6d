package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/teamtodo/internal/app"
	"github.com/idilsaglam/teamtodo/internal/due"
	"github.com/idilsaglam/teamtodo/internal/model"
	"github.com/idilsaglam/teamtodo/internal/ui"
)

func newAddCmd(a *App) *cobra.Command {
	var dueExpr, at string
	var team bool
	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add an item (text can be multiple words)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usage("usage: todo add <text...> [--due DATE] [--at HH:MM] [--team]")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in := app.AddInput{
				Text:      strings.Join(args, " "),
				ShareType: model.SharePersonal,
			}
			if team {
				in.ShareType = model.ShareTeam
			}
			if dueExpr != "" {
				date, err := due.Resolve(dueExpr, a.ctl.Now())
				if err != nil {
					return invalid(err)
				}
				in.DueDate = date
			}
			if at != "" {
				if in.DueDate == "" {
					return usage("--at needs --due")
				}
				h, m, err := due.SplitClock(at)
				if err != nil {
					return invalid(err)
				}
				in.Hour, in.Minute = h, m
			}

			it, err := a.ctl.Add(in)
			if err != nil {
				return userError(err)
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("%s (#%d)", ui.MsgAdded, it.ID))
			return nil
		},
	}
	cmd.Flags().StringVar(&dueExpr, "due", "", "Due date: today, tomorrow, +N, month-end, next-month or YYYY-MM-DD")
	cmd.Flags().StringVar(&at, "at", "", "Due time HH:MM (minutes 00, 15, 30 or 45); needs --due")
	cmd.Flags().BoolVar(&team, "team", false, "Share with the team (only in --mode team)")
	return cmd
}

func newListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List items in display order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Render(a.ctl.View()))
			return nil
		},
	}
}

func newStatsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show item counts for the active list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ui.StatsLine(a.ctl.Stats()))
			return nil
		},
	}
}

func parseID(args []string, use string) (int, error) {
	if len(args) != 1 {
		return 0, usage("usage: todo %s", use)
	}
	n, err := strconv.Atoi(strings.TrimPrefix(args[0], "#"))
	if err != nil {
		return 0, usage("not a number: %s", args[0])
	}
	return n, nil
}

func newDoneCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle completion of an item",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args, "done <id>")
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}
			it, ok := a.ctl.Toggle(id)
			if !ok {
				ui.Hint(cmd.OutOrStdout(), ui.MsgNotFound+" Hint: run `todo ls` to see ids")
				return nil
			}
			msg := ui.MsgReopened
			if it.Completed {
				msg = ui.MsgCompleted
			}
			ui.OK(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func newRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an item (asks first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args, "rm <id>")
			if err != nil {
				return err
			}
			if err := a.requireSession(); err != nil {
				return err
			}
			it, ok := a.ctl.Lookup(id)
			if !ok {
				ui.Hint(cmd.OutOrStdout(), ui.MsgNotFound+" Hint: run `todo ls` to see ids")
				return nil
			}
			if !a.confirm(cmd, fmt.Sprintf("%s \"%s\"", ui.ConfirmRemove, it.Text)) {
				return nil
			}
			a.ctl.Remove(id)
			ui.OK(cmd.OutOrStdout(), ui.MsgRemoved)
			return nil
		},
	}
}

func newClearCompletedCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-completed",
		Short: "Delete completed items from the personal list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			n := a.ctl.CompletedPersonal()
			if n == 0 {
				return invalidMsg(app.ErrNothingToClear, ui.MsgNoCompleted)
			}
			if !a.confirm(cmd, ui.ConfirmClearCompleted(n)) {
				return nil
			}
			if _, err := a.ctl.ClearCompleted(); err != nil {
				return userError(err)
			}
			ui.OK(cmd.OutOrStdout(), ui.MsgClearedDone)
			return nil
		},
	}
}

func newClearAllCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-all",
		Short: "Delete every personal item and restart ids at 1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}
			if len(a.ctl.State().Personal) == 0 {
				return userError(app.ErrNothingToClear)
			}
			if !a.confirm(cmd, ui.ConfirmClearAll) {
				return nil
			}
			if _, err := a.ctl.ClearAll(); err != nil {
				if errors.Is(err, app.ErrNothingToClear) {
					return userError(err)
				}
				return err
			}
			ui.OK(cmd.OutOrStdout(), ui.MsgClearedAll)
			return nil
		},
	}
}

func invalidMsg(err error, msg string) error {
	return &exitError{code: 2, err: err, msg: msg}
}

func (a *App) requireSession() error {
	if _, ok := a.ctl.CurrentSession(); !ok {
		return userError(app.ErrNotSignedIn)
	}
	return nil
}
