package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/endurance/internal/config"
	"github.com/idilsaglam/endurance/internal/deeplink"
	"github.com/idilsaglam/endurance/internal/logging"
	"github.com/idilsaglam/endurance/internal/store"
	"github.com/idilsaglam/endurance/internal/store/jsonstore"
	"github.com/idilsaglam/endurance/internal/store/sqlitestore"
	"github.com/idilsaglam/endurance/internal/tui"
	"github.com/idilsaglam/endurance/internal/ui"
)

// App holds root flags and what PersistentPreRunE resolved from them.
type App struct {
	ConfigPath string
	Dir        string
	Backend    string
	Verbose    bool
	Item       string
	Link       string

	cfg     *config.Config
	cfgPath string
	log     *zap.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "endurance",
		Short:         "Nine pieces, one board: name, price and photograph each of them",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          usageArgs(cobra.NoArgs),
		Example: strings.TrimSpace(`
  # Open the board
  endurance

  # Open piece 3 directly, the way a tag link does
  endurance --link "https://tag.example/?item=2"
  ENDURANCE_LINK="?item=2" endurance

  # Scriptable commands (pieces are numbered 1-9)
  endurance ls
  endurance name 3 "Blue vase"
  endurance price 3 40
  endurance photo 3 ~/Pictures/vase.jpg
  endurance clear

  # Write the effective settings to the config file
  endurance --backend sqlite init
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.log != nil {
			_ = app.log.Sync()
		}
		return nil
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to config file (default: ~/.endurance/config.yaml)")
	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("ENDURANCE_DIR", ""), "Data directory (overrides storage.dir)")
	cmd.PersistentFlags().StringVar(&app.Backend, "backend", envOr("ENDURANCE_BACKEND", ""), "Storage backend (json|sqlite)")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Debug logging")
	cmd.Flags().StringVar(&app.Item, "item", "", "Open the detail view of this slot (0-8)")
	cmd.Flags().StringVar(&app.Link, "link", envOr("ENDURANCE_LINK", ""), "Deep link URL or query carrying item=<slot>")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newNameCmd(app))
	cmd.AddCommand(newPriceCmd(app))
	cmd.AddCommand(newPhotoCmd(app))
	cmd.AddCommand(newClearCmd(app))

	return cmd
}

// Execute runs cmd and maps the outcome to an exit code (0 ok, 1 error, 2 usage).
func Execute(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	ui.Fail(cmd.ErrOrStderr(), err.Error())
	return ExitCode(err)
}

// ExitCode is 0 for nil, 2 for usage errors and 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func errUsage(format string, a ...any) error {
	return usageError{fmt.Errorf(format, a...)}
}

func usageArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// setup loads config, applies flag overrides, then builds the theme and logger.
func (a *App) setup(cmd *cobra.Command) error {
	path := a.ConfigPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if v := strings.TrimSpace(a.Dir); v != "" {
		cfg.Storage.Dir = v
	}
	if v := strings.TrimSpace(a.Backend); v != "" {
		cfg.Storage.Backend = strings.ToLower(v)
	}
	if err := cfg.Validate(); err != nil {
		return usageError{err}
	}

	log, err := logging.New(cfg.Logging, a.Verbose)
	if err != nil {
		return err
	}
	ui.SetTheme(cfg.UI.Theme)

	a.cfg = cfg
	a.cfgPath = path
	a.log = log
	a.log.Debug("config loaded",
		zap.String("command", cmd.CommandPath()),
		zap.String("dir", cfg.Storage.Dir),
		zap.String("backend", cfg.Storage.Backend),
	)
	return nil
}

func openStore(ctx context.Context, app *App) (*store.Store, error) {
	dir := app.cfg.Storage.Dir
	var (
		b   store.Backend
		err error
	)
	switch app.cfg.Storage.Backend {
	case config.BackendSQLite:
		b, err = sqlitestore.Open(ctx, dir)
	default:
		b, err = jsonstore.New(dir)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", app.cfg.Storage.Backend, err)
	}
	return store.New(b, app.log), nil
}

// start resolves the first screen: --item wins over --link (and ENDURANCE_LINK).
func (a *App) start() (int, bool) {
	if v := strings.TrimSpace(a.Item); v != "" {
		return deeplink.Index(v)
	}
	return deeplink.Parse(a.Link)
}

func runTUI(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	st, err := openStore(ctx, app)
	if err != nil {
		return err
	}
	defer st.Close()

	var watch tui.WatchFunc
	if app.cfg.Storage.Watch {
		watch = func(ctx context.Context, fn func()) error {
			err := st.Watch(ctx, fn)
			if errors.Is(err, store.ErrWatchUnsupported) {
				return nil
			}
			return err
		}
	}

	index, ok := app.start()
	return tui.Run(ctx, st, tui.Options{Start: index, StartOK: ok, Log: app.log}, watch)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
