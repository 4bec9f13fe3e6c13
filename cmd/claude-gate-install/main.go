package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ml0-1337/claude-gate-install/internal/cmd"
	"github.com/ml0-1337/claude-gate-install/internal/core"
)

var version = "dev"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "Unexpected error: %v\n", r)
			code = core.ExitGeneral
		}
	}()

	rootCmd := cmd.NewRootCmd(version, nil)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !cmd.IsReported(err) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return core.ExitGeneral
	}
	return core.ExitSuccess
}
