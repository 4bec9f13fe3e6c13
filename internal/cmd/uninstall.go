package cmd

import (
	"github.com/ml0-1337/claude-gate-install/internal/core"
	"github.com/ml0-1337/claude-gate-install/internal/installer"
	"github.com/spf13/cobra"
)

// NewUninstallCmd creates the uninstall command. It always exits 0 so a
// package removal is never blocked by cleanup problems.
func NewUninstallCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "uninstall",
		Short:       "Remove the staged binary and wrapper scripts",
		Long:        `Remove every artifact install may have written, for any platform, then the bin directory if it is empty. Failures are reported as warnings and never fail the command. Intended to run as the npm preuninstall hook.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{lenientAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := app.Printer

			defer func() {
				if r := recover(); r != nil {
					p.Error("Uninstall error: %v", r)
				}
			}()

			p.Plain("Cleaning up %s...", core.CommandName)

			inst := installer.NewWithFs(app.Cfg, app.Log, app.Fs)
			report := inst.Uninstall(cmd.Context())

			for _, name := range report.Removed {
				p.Plain("Removed: %s", name)
			}
			if report.DirRemoved {
				p.Plain("Removed empty bin directory")
			}

			if len(report.Removed) > 0 {
				p.Success("%s uninstalled successfully", core.CommandName)
			} else {
				p.Plain("No files to clean up")
			}

			app.Log.Debug().
				Int("removed", len(report.Removed)).
				Int("warnings", len(report.Warnings)).
				Msg("uninstall finished")

			return nil
		},
	}

	return cmd
}
