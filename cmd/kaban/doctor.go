package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/amonks/kaban/persist"
	"github.com/amonks/kaban/task"
	"github.com/amonks/kaban/theme"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the stored board for problems",
	Long: `Check the stored board for problems.

A board that cannot be read is opened as an empty board by every other
command, and the next change overwrites it. Run doctor to find out why
it was rejected before that happens.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

// errDoctorFailed is returned when doctor found a problem it has already
// described on stdout.
var errDoctorFailed = errors.New("stored board has problems")

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	a, err := openApp(openOptions{logOutput: io.Discard})
	if err != nil {
		return err
	}
	defer a.Close()

	collection, inspectErr := a.bridge.Inspect()
	storedTheme, themeErr := storedTheme(a)
	fmt.Fprint(cmd.OutOrStdout(), formatDoctorReport(a.cfg.Storage.Backend, a.stateDir, collection, inspectErr, storedTheme, themeErr))
	if inspectErr != nil || themeErr != nil {
		return errDoctorFailed
	}
	return nil
}

// storedTheme returns the raw stored theme, or "" when none is stored.
func storedTheme(a *app) (string, error) {
	value, ok, err := a.kv.Get(theme.Key)
	if err != nil {
		return "", fmt.Errorf("read theme: %w", err)
	}
	if !ok {
		return "", nil
	}
	if _, valid := theme.Parse(value); !valid {
		return value, fmt.Errorf("invalid theme %q", value)
	}
	return value, nil
}

func formatDoctorReport(backend, stateDir string, collection task.Collection, inspectErr error, storedTheme string, themeErr error) string {
	report := fmt.Sprintf("backend:   %s\nstate dir: %s\n", backend, stateDir)

	var validation *persist.ValidationError
	switch {
	case inspectErr == nil:
		report += fmt.Sprintf("tasks:     ok (%d)\n", len(collection))
	case errors.As(inspectErr, &validation) && validation.Path != "":
		report += fmt.Sprintf("tasks:     corrupt at %s: %v\n", validation.Path, validation.Err)
	default:
		report += fmt.Sprintf("tasks:     corrupt: %v\n", inspectErr)
	}

	switch {
	case themeErr != nil:
		report += fmt.Sprintf("theme:     %v\n", themeErr)
	case storedTheme == "":
		report += "theme:     not set (follows the terminal)\n"
	default:
		report += fmt.Sprintf("theme:     %s\n", storedTheme)
	}
	return report
}
