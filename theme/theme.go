// Package theme persists the light/dark preference next to the tasks.
package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/amonks/kaban/internal/kv"
	internalstrings "github.com/amonks/kaban/internal/strings"
)

// Key is the storage key holding the preference.
const Key = "theme"

// Theme is a color scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// IsValid reports whether t is a known theme.
func (t Theme) IsValid() bool {
	return t == Light || t == Dark
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Parse reads a theme name, ignoring case and surrounding space.
func Parse(value string) (Theme, bool) {
	t := Theme(internalstrings.NormalizeKey(value))
	return t, t.IsValid()
}

// System reports the terminal's preference.
func System() Theme {
	if lipgloss.HasDarkBackground() {
		return Dark
	}
	return Light
}

// Load returns the stored theme. When nothing valid is stored, or the store
// cannot be read, it falls back to system. A nil system means System.
func Load(store kv.Store, system func() Theme) Theme {
	if system == nil {
		system = System
	}
	value, ok, err := store.Get(Key)
	if err != nil || !ok {
		return system()
	}
	t, ok := Parse(value)
	if !ok {
		return system()
	}
	return t
}

// Save stores t.
func Save(store kv.Store, t Theme) error {
	if !t.IsValid() {
		return fmt.Errorf("invalid theme %q", t)
	}
	if err := store.Set(Key, string(t)); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	return nil
}

// Toggle flips the current theme, stores it and returns it.
func Toggle(store kv.Store, system func() Theme) (Theme, error) {
	next := Load(store, system).Opposite()
	if err := Save(store, next); err != nil {
		return next, err
	}
	return next, nil
}
