package cmd

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/ml0-1337/claude-gate-install/internal/core"
	"github.com/ml0-1337/claude-gate-install/internal/installer"
	"github.com/ml0-1337/claude-gate-install/internal/locator"
	"github.com/ml0-1337/claude-gate-install/internal/platform"
	"github.com/spf13/cobra"
)

// NewInstallCmd creates the install command
func NewInstallCmd(app *App) *cobra.Command {
	var (
		osType   string
		archType string
		progress bool
	)

	// The running process is only consulted here; everything below gets
	// explicit values.
	defaultOS, defaultArch := platform.FromGo(runtime.GOOS, runtime.GOARCH)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Stage the platform binary and write the claude-gate wrappers",
		Long:  `Locate the prebuilt binary shipped in the optional @claude-gate/<platform> package, copy it into the package's bin directory and write the claude-gate wrapper scripts. Intended to run as the npm postinstall hook.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := app.Printer
			log := app.Log

			p.Plain("Installing %s...", core.CommandName)

			d, err := platform.Resolve(osType, archType)
			if err != nil {
				reportInstallError(app, err)
				return &reportedError{err}
			}
			p.Info("Platform detected: %s", d.Key())

			inst := installer.NewWithFs(app.Cfg, log, app.Fs)
			if progress || app.Cfg.Install.Progress {
				inst.ProgressOut = cmd.ErrOrStderr()
			}

			source, err := inst.Locate(d)
			if err != nil {
				reportInstallError(app, err)
				return &reportedError{err}
			}
			p.Info("Found binary at: %s", source)

			res, err := inst.Stage(cmd.Context(), d, source)
			if err != nil {
				reportInstallError(app, err)
				return &reportedError{err}
			}

			log.Debug().
				Str("staged", res.StagedBinary).
				Strs("wrappers", res.Wrappers).
				Msg("artifacts staged")

			p.Success("%s installed successfully!", core.CommandName)
			p.Plain("Run \"%s --help\" to get started.", core.CommandName)
			return nil
		},
	}

	cmd.Flags().StringVar(&osType, "os", defaultOS, "operating system to install for (darwin, linux, win32)")
	cmd.Flags().StringVar(&archType, "arch", defaultArch, "architecture to install for (x64, arm64, ia32)")
	cmd.Flags().BoolVar(&progress, "progress", false, "show a progress bar while copying the binary")

	return cmd
}

// reportInstallError prints the user-facing message for an install failure.
func reportInstallError(app *App, err error) {
	p := app.Printer

	var (
		upe *platform.UnsupportedPlatformError
		nf  *locator.BinaryNotFoundError
	)
	switch {
	case errors.As(err, &upe):
		p.Error("%s", upe.Error())
		if upe.Suggestion != "" {
			p.Block(fmt.Sprintf("Did you mean %s? Pass --os and --arch to override detection.\n", upe.Suggestion))
		}
	case errors.As(err, &nf):
		p.Block(remediationText(nf.PackageName, app.Cfg.Install.ReleasesURL))
	default:
		p.Error("Installation failed: %v", err)
		p.Block(fmt.Sprintf("\nFor manual installation instructions, visit:\n%s\n", app.Cfg.Install.DocsURL))
	}

	app.Log.Debug().Err(err).Msg("install failed")
}

// remediationText explains how to recover from a missing platform package.
func remediationText(packageName, releasesURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\nERROR: Could not find platform binary for %s\n\n", packageName)
	b.WriteString("This might happen if:\n")
	b.WriteString("1. The platform package failed to install\n")
	b.WriteString("2. You're using an unsupported platform\n")
	b.WriteString("3. Installation was run with --ignore-scripts\n\n")
	b.WriteString("Try running:\n")
	fmt.Fprintf(&b, "  npm install %s\n\n", packageName)
	b.WriteString("Or download the binary manually from:\n")
	fmt.Fprintf(&b, "  %s\n\n", releasesURL)
	return b.String()
}
