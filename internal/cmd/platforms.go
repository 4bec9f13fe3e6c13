package cmd

import (
	"runtime"

	"github.com/ml0-1337/claude-gate-install/internal/platform"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

// NewPlatformsCmd creates the platforms command
func NewPlatformsCmd(_ *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "List supported platforms and their packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current := platform.Key(platform.FromGo(runtime.GOOS, runtime.GOARCH))

			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeader([]string{"Platform", "Package", "Current"}),
				tablewriter.WithAlignment(tw.MakeAlign(3, tw.AlignLeft)),
				tablewriter.WithSymbols(tw.NewSymbols(tw.StyleLight)),
			)

			for _, d := range platform.Supported() {
				mark := ""
				if d.Key() == current {
					mark = "*"
				}
				if err := table.Append(d.Key(), d.PackageName, mark); err != nil {
					return err
				}
			}

			return table.Render()
		},
	}

	return cmd
}
