// Package testsupport holds helpers shared by kaban's tests.
package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// homeDirs mirror the layout a real HOME has after kaban's first run.
var homeDirs = []string{
	filepath.Join(".local", "state", "kaban"),
	filepath.Join(".config", "kaban"),
}

// EnsureHomeDirs creates the state and config directories under homeDir.
func EnsureHomeDirs(homeDir string) error {
	for _, dir := range homeDirs {
		if err := os.MkdirAll(filepath.Join(homeDir, dir), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// SetupTestHome points HOME at a fresh temp dir with kaban's directories.
func SetupTestHome(t testing.TB) string {
	t.Helper()

	homeDir := t.TempDir()
	if err := EnsureHomeDirs(homeDir); err != nil {
		t.Fatalf("setup home dir: %v", err)
	}
	t.Setenv("HOME", homeDir)
	return homeDir
}
