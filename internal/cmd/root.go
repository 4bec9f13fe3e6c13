package cmd

import (
	"errors"
	"fmt"

	"github.com/ml0-1337/claude-gate-install/internal/config"
	"github.com/ml0-1337/claude-gate-install/internal/logging"
	"github.com/ml0-1337/claude-gate-install/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// lenientAnnotation marks commands that must succeed even when the
// configuration cannot be loaded.
const lenientAnnotation = "lenient"

// App carries the state shared by all subcommands. It is filled in by the
// root command before any subcommand runs.
type App struct {
	Cfg     *config.Config
	Log     *zerolog.Logger
	Printer *ui.Printer
	Fs      afero.Fs
}

// reportedError marks an error whose message was already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already printed by a command.
func IsReported(err error) bool {
	var re *reportedError
	return errors.As(err, &re)
}

// NewRootCmd creates the root command. fs is the filesystem the installer
// operates on; nil means the OS filesystem.
func NewRootCmd(version string, fs afero.Fs) *cobra.Command {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	app := &App{Fs: fs}

	var packageDir string

	cmd := &cobra.Command{
		Use:           "claude-gate-install",
		Short:         "Stage the platform claude-gate binary for an npm install",
		Long:          `Resolves the current platform, stages the matching prebuilt claude-gate binary from its optional platform package, and writes the wrapper scripts npm links onto PATH.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.load(cmd, packageDir)
		},
	}

	cmd.PersistentFlags().StringVar(&packageDir, "package-dir", "", "root of the installed npm package (default: current directory)")

	cmd.AddCommand(NewInstallCmd(app))
	cmd.AddCommand(NewUninstallCmd(app))
	cmd.AddCommand(NewPlatformsCmd(app))
	cmd.AddCommand(NewVersionCmd(version))

	return cmd
}

func (a *App) load(cmd *cobra.Command, packageDir string) error {
	a.Printer = ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := config.Load(packageDir)
	if err != nil {
		if cmd.Annotations[lenientAnnotation] != "true" {
			a.Printer.Error("Error loading config: %v", err)
			return &reportedError{fmt.Errorf("load config: %w", err)}
		}
		a.Printer.Warning("ignoring unreadable config: %v", err)
		cfg = config.Default(packageDir)
	}
	a.Cfg = cfg

	ui.InitColors(cfg.Logging.Color)
	a.Log = logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		LogFile: cfg.Paths.LogFile,
		NoColor: cfg.Logging.Color == "never",
		Out:     cmd.ErrOrStderr(),
	})

	return nil
}
