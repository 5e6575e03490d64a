package cli

import (
	"fmt"
	"io"

	"danc/internal/app"
	"danc/internal/config"
	"danc/internal/logger"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Settings string
	Verbose  bool
	Format   string // "json" | "text"

	deps app.Deps
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the danc command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(app.Deps{})
}

func newRootCommand(deps app.Deps) *cobra.Command {
	opts := &RootOptions{deps: deps}

	cmd := &cobra.Command{
		Use:           "danc",
		Short:         "Display Adapter Name Changer",
		Long:          "Rename display adapters in the device registry, keeping a restorable backup of each original name.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Settings, "settings", "", "settings file (default: settings.yaml next to the executable)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewAdaptersCommand(opts))
	cmd.AddCommand(NewRenameCommand(opts))
	cmd.AddCommand(NewBackupsCommand(opts))
	cmd.AddCommand(NewLangCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

type session struct {
	cfg    config.AppConfig
	app    *app.App
	out    *OutputFormatter
	closer io.Closer
}

func (s *session) Close() {
	_ = s.app.Close()
	_ = s.closer.Close()
}

// open loads settings, starts logging and builds the application.
func (o *RootOptions) open(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Init(o.Settings)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load settings", err)
	}
	level := cfg.LogLevel
	if o.Verbose {
		level = "debug"
	}
	closer, err := logger.Init(cfg.LogPath, level)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open log", err)
	}
	a, err := app.New(cfg, logger.L, o.deps)
	if err != nil {
		_ = closer.Close()
		return nil, WrapExitError(ExitCommandError, "start", err)
	}
	return &session{
		cfg:    cfg,
		app:    a,
		closer: closer,
		out: &OutputFormatter{
			Format:    o.Format,
			Writer:    cmd.OutOrStdout(),
			ErrWriter: cmd.ErrOrStderr(),
			Verbose:   o.Verbose,
		},
	}, nil
}
