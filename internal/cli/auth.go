package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/teamtodo/internal/app"
	"github.com/idilsaglam/teamtodo/internal/ui"
)

// EnvIDToken holds an identity assertion for `auth external` when no
// argument is given.
const EnvIDToken = "TODO_ID_TOKEN"

func newAuthCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign up, sign in and out",
	}
	cmd.AddCommand(newSignUpCmd(a))
	cmd.AddCommand(newLoginCmd(a))
	cmd.AddCommand(newExternalCmd(a))
	cmd.AddCommand(newLogoutCmd(a))
	cmd.AddCommand(newWhoamiCmd(a))
	return cmd
}

type field struct {
	label string
	dst   *string
}

// fill prompts for every flag value that was left empty.
func (a *App) fill(cmd *cobra.Command, fields ...field) error {
	for _, f := range fields {
		if *f.dst != "" {
			continue
		}
		v, err := a.prompt(cmd, f.label)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}

func newSignUpCmd(a *App) *cobra.Command {
	var in app.SignUpInput
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a local account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.fill(cmd,
				field{"사용자명: ", &in.Username},
				field{"표시 이름: ", &in.DisplayName},
				field{"비밀번호: ", &in.Password},
				field{"비밀번호 확인: ", &in.Confirm},
			); err != nil {
				return err
			}
			if _, err := a.ctl.SignUp(in); err != nil {
				return userError(err)
			}
			ui.OK(cmd.OutOrStdout(), ui.MsgSignedUp)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Username, "username", "", "Username (2-20 characters)")
	f.StringVar(&in.DisplayName, "display-name", "", "Name shown to the team")
	f.StringVar(&in.Password, "password", "", "Password (6+ characters)")
	f.StringVar(&in.Confirm, "confirm", "", "Password again")
	return cmd
}

func newLoginCmd(a *App) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with a local account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.fill(cmd,
				field{"사용자명: ", &username},
				field{"비밀번호: ", &password},
			); err != nil {
				return err
			}
			if _, err := a.ctl.SignIn(username, password); err != nil {
				return userError(err)
			}
			ui.OK(cmd.OutOrStdout(), ui.MsgSignedIn)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	return cmd
}

func newExternalCmd(a *App) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "external [assertion]",
		Short: "Sign in with an identity provider token (JWT)",
		Long: "Sign in with an identity assertion issued by an external provider.\n" +
			"The token is taken from the argument, --file, or $" + EnvIDToken + ".",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var token string
			switch {
			case len(args) == 1:
				token = args[0]
			case file != "":
				b, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read token: %w", err)
				}
				token = string(b)
			default:
				token = os.Getenv(EnvIDToken)
			}
			token = strings.TrimSpace(token)
			if token == "" {
				return usage("usage: todo auth external <token> (or --file, or $%s)", EnvIDToken)
			}

			res, err := a.ctl.SignInExternal(token)
			if err != nil {
				a.log.Debug("external sign-in failed", "err", err)
				return userError(err)
			}
			ui.OK(cmd.OutOrStdout(), ui.ExternalWelcome(res.Session.DisplayName, res.Created))
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Read the token from a file")
	return cmd
}

func newLogoutCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out (asks first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := a.ctl.CurrentSession(); !ok {
				ui.Hint(cmd.OutOrStdout(), "Not signed in.")
				return nil
			}
			if !a.confirm(cmd, ui.ConfirmSignOut) {
				return nil
			}
			a.ctl.SignOut()
			ui.OK(cmd.OutOrStdout(), ui.MsgSignedOut)
			return nil
		},
	}
}

func newWhoamiCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := a.ctl.CurrentSession()
			if !ok {
				ui.Hint(cmd.OutOrStdout(), "Not signed in. Hint: todo auth login")
				return nil
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Username: %s\n", s.Username)
			fmt.Fprintf(w, "Name:     %s\n", s.DisplayName)
			fmt.Fprintf(w, "Auth:     %s\n", s.AuthType)
			if s.Email != "" {
				fmt.Fprintf(w, "Email:    %s\n", s.Email)
			}
			if s.Picture != "" {
				fmt.Fprintf(w, "Picture:  %s\n", s.Picture)
			}
			return nil
		},
	}
}
