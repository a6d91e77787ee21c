package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/amonks/kaban/internal/boardtui"
	"github.com/amonks/kaban/internal/ui"
	"github.com/amonks/kaban/theme"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive board",
	Long: `Open the interactive board.

Press ? inside the board for the list of keys. Diagnostics are written
to kaban.log in the state directory.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !ui.IsTerminal(os.Stdin) || !ui.IsTerminal(os.Stdout) {
		return errors.New("kaban tui needs an interactive terminal")
	}

	a, err := openApp(openOptions{logToFile: true})
	if err != nil {
		return err
	}
	runErr := boardtui.Run(cmd.Context(), boardtui.Options{
		Store:  a.store,
		Prefs:  a.kv,
		Locale: a.locale,
		System: theme.System,
		Logger: a.logger,
	})
	if runErr != nil {
		a.logger.Error("board exited", "err", runErr)
	}
	return errors.Join(runErr, a.Close())
}
