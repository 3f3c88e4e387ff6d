package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/teamtodo/internal/app"
	"github.com/idilsaglam/teamtodo/internal/config"
	"github.com/idilsaglam/teamtodo/internal/logging"
	"github.com/idilsaglam/teamtodo/internal/model"
	"github.com/idilsaglam/teamtodo/internal/store"
	"github.com/idilsaglam/teamtodo/internal/ui"
)

// App holds flag values and the per-invocation controller.
type App struct {
	ConfigPath string
	DataDir    string
	Backend    string
	Mode       string
	Theme      string
	TimeZone   string
	Yes        bool
	Color      bool
	NoColor    bool

	cfg    config.Config
	ctl    *app.Controller
	closer io.Closer
	log    *log.Logger
	in     *bufio.Reader
}

// exitError carries a process exit code: 1 runtime error, 2 usage or
// validation error.
type exitError struct {
	code int
	err  error
	msg  string // shown instead of err when set
}

func (e *exitError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return e.err.Error()
}
func (e *exitError) Unwrap() error { return e.err }

func usage(format string, args ...any) error {
	return &exitError{code: 2, err: fmt.Errorf(format, args...)}
}

func invalid(err error) error { return &exitError{code: 2, err: err} }

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{})
}

func newRootCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "Personal and team to-do list with a team chat",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  todo auth signup --username ab --display-name Ab
  todo add "Buy milk"
  todo add "Ship report" --due +3 --at 14:30
  todo --mode team add "Plan offsite" --team
  todo ls
  todo done 2
  todo rm 3
  todo --mode team chat send "hello"
  todo tui
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return usage("missing subcommand")
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.setup(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return a.teardown()
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return invalid(err)
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.ConfigPath, "config", "", "Path to config.toml (default: user config dir)")
	pf.StringVar(&a.DataDir, "data-dir", "", "Directory holding the store")
	pf.StringVar(&a.Backend, "backend", "", "Storage backend (json|sqlite|memory)")
	pf.StringVar(&a.Mode, "mode", "", "Active list (personal|team)")
	pf.StringVar(&a.Theme, "theme", "", "Color theme (classic|neon|mono)")
	pf.StringVar(&a.TimeZone, "tz", "", "Time zone for due dates (default: local)")
	pf.BoolVarP(&a.Yes, "yes", "y", false, "Answer yes to confirmations")
	pf.BoolVar(&a.Color, "color", false, "Force colors when output is not a terminal")
	pf.BoolVar(&a.NoColor, "no-color", false, "Disable colors (wins over --color)")

	cmd.AddCommand(newAddCmd(a))
	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newDoneCmd(a))
	cmd.AddCommand(newRemoveCmd(a))
	cmd.AddCommand(newClearCompletedCmd(a))
	cmd.AddCommand(newClearAllCmd(a))
	cmd.AddCommand(newStatsCmd(a))
	cmd.AddCommand(newChatCmd(a))
	cmd.AddCommand(newAuthCmd(a))
	cmd.AddCommand(newPresetsCmd(a))
	cmd.AddCommand(newTUICmd(a))

	return cmd
}

// Execute runs the command tree with os.Args and returns the exit code.
func Execute() int {
	a := &App{}
	cmd := newRootCmd(a)
	err := cmd.Execute()
	// cobra skips PersistentPostRunE when RunE fails
	if cerr := a.teardown(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		ui.Fail(cmd.ErrOrStderr(), err.Error())
	}
	return ExitCode(err)
}

func (a *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = a.DataDir
	}
	if flags.Changed("backend") {
		cfg.Backend = a.Backend
	}
	if flags.Changed("mode") {
		cfg.Mode = a.Mode
	}
	if flags.Changed("theme") {
		cfg.Theme = a.Theme
	}
	if flags.Changed("tz") {
		cfg.TimeZone = a.TimeZone
	}
	if err := cfg.Validate(); err != nil {
		return invalid(err)
	}
	a.cfg = cfg

	ui.SetTheme(cfg.Theme)
	ui.SetColorForcing(a.Color, a.NoColor)
	a.log = logging.FromConfig(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	a.in = bufio.NewReader(cmd.InOrStdin())

	loc, err := cfg.Location()
	if err != nil {
		return invalid(err)
	}
	kv, closer, err := store.Open(cfg.Backend, cfg.DataDir, a.log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	a.closer = closer

	a.ctl = app.New(kv, app.WithLogger(a.log), app.WithLocation(loc))
	a.ctl.Load()
	mode, _ := model.ParseMode(strings.ToLower(strings.TrimSpace(cfg.Mode)))
	a.ctl.SetMode(mode)
	if cfg.AutoDefaultUser && a.ctl.EnsureDefaultUser() {
		a.log.Info("signed in default user", "user", app.DefaultUsername)
	}
	return nil
}

func (a *App) teardown() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

// Controller exposes the loaded controller (for tests and the TUI command).
func (a *App) Controller() *app.Controller { return a.ctl }

// confirm asks a yes/no question on stdin. --yes answers for the user; EOF
// means no.
func (a *App) confirm(cmd *cobra.Command, question string) bool {
	if a.Yes {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(cmd.OutOrStdout())
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "예", "네", "ㅇ":
		return true
	}
	return false
}

// prompt reads one line, printing label first.
func (a *App) prompt(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), label)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// userError converts an app validation error into an exit-2 error with the
// user-facing message.
func userError(err error) error {
	return &exitError{code: 2, err: err, msg: ui.Message(err)}
}
