package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amonks/kaban/internal/validation"
	"github.com/amonks/kaban/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|toggle]",
	Short: "Show or change the color theme",
	Long: `Show or change the color theme used by the board.

With no argument, print the current theme. When no theme has been
chosen, the terminal background decides.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: themeArgs(),
	RunE:      runTheme,
}

const themeToggle = "toggle"

var errInvalidTheme = errors.New("invalid theme")

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(a *app) error {
		current, err := applyTheme(a, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), current)
		return nil
	})
}

func applyTheme(a *app, args []string) (theme.Theme, error) {
	if len(args) == 0 {
		return theme.Load(a.kv, nil), nil
	}
	if args[0] == themeToggle {
		return theme.Toggle(a.kv, nil)
	}

	next, ok := theme.Parse(args[0])
	if !ok {
		return "", validation.FormatInvalidValueError(errInvalidTheme, args[0], themeArgs())
	}
	if err := theme.Save(a.kv, next); err != nil {
		return "", err
	}
	return next, nil
}

func themeArgs() []string {
	return []string{string(theme.Light), string(theme.Dark), themeToggle}
}
