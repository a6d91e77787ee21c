// Package editor edits tasks as text files in the user's $EDITOR.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

// EditorEnv names the editor command. It may include arguments,
// as in "code --wait".
const EditorEnv = "EDITOR"

// DefaultEditor is used when $EDITOR is unset.
const DefaultEditor = "vi"

// IsInteractive returns true if stdin is a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Command returns the editor command and its leading arguments.
func Command() (string, []string) {
	fields := strings.Fields(os.Getenv(EditorEnv))
	if len(fields) == 0 {
		return DefaultEditor, nil
	}
	return fields[0], fields[1:]
}

// Edit opens path in the editor and waits for it to exit.
// It returns an error unless the editor exits with status 0.
func Edit(path string) error {
	name, args := Command()
	cmd := exec.Command(name, append(args, path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
