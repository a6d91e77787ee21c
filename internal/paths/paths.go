package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigEnv overrides the config file location.
const ConfigEnv = "KABAN_CONFIG"

// HomeDir returns the current user's home directory.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return home, nil
}

// DefaultStateDir returns the default kaban state directory.
func DefaultStateDir() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".local", "state", "kaban"), nil
}

// ConfigPath returns the config file path, honoring $KABAN_CONFIG.
func ConfigPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(ConfigEnv)); override != "" {
		return ExpandHome(override)
	}

	home, err := HomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "kaban", "config.toml"), nil
}

// ExpandHome replaces a leading "~" with the home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// ResolveWithDefault returns override if set, otherwise calls defaultFn.
func ResolveWithDefault(override string, defaultFn func() (string, error)) (string, error) {
	if override != "" {
		return ExpandHome(override)
	}
	return defaultFn()
}
