// Package main implements the kaban CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run())
}

// run executes the command line and returns the process exit code.
func run() int {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		return 1
	}
	return 0
}

var rootCmd = &cobra.Command{
	Use:   "kaban",
	Short: "Kaban - a personal kanban board",
	Long: `Kaban keeps a personal kanban board with three columns:
To Do, In Progress and Done.

Run "kaban tui" for the interactive board, or use the subcommands
to manage tasks from scripts.`,
	SilenceUsage: true,
}
