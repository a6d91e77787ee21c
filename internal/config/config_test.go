package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"

	"github.com/amonks/kaban/internal/config"
	"github.com/amonks/kaban/internal/kv"
	"github.com/amonks/kaban/internal/paths"
	"github.com/amonks/kaban/internal/testsupport"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_NotFound(t *testing.T) {
	home := testsupport.SetupTestHome(t)
	t.Setenv(paths.ConfigEnv, "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.Backend != "file" {
		t.Errorf("Backend = %q, expected file", cfg.Storage.Backend)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Level = %q, expected warn", cfg.Log.Level)
	}

	dir, err := cfg.StateDir()
	if err != nil {
		t.Fatalf("state dir: %v", err)
	}
	expected := filepath.Join(home, ".local", "state", "kaban")
	if dir != expected {
		t.Errorf("StateDir = %q, expected %q", dir, expected)
	}
}

func TestLoad_UsesConfigEnv(t *testing.T) {
	testsupport.SetupTestHome(t)
	path := writeConfig(t, `
[log]
level = "debug"
`)
	t.Setenv(paths.ConfigEnv, path)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, expected debug", cfg.Log.Level)
	}
	if cfg.Storage.Backend != "file" {
		t.Errorf("expected default backend to survive, got %q", cfg.Storage.Backend)
	}
}

func TestLoadFile_Full(t *testing.T) {
	home := testsupport.SetupTestHome(t)
	path := writeConfig(t, `
[storage]
backend = "sqlite"
dir = "~/boards"

[log]
level = " error "

[view]
locale = "sv"
`)

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("Backend = %q, expected sqlite", cfg.Storage.Backend)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Level = %q, expected error", cfg.Log.Level)
	}

	dir, err := cfg.StateDir()
	if err != nil {
		t.Fatalf("state dir: %v", err)
	}
	if dir != filepath.Join(home, "boards") {
		t.Errorf("StateDir = %q, expected %q", dir, filepath.Join(home, "boards"))
	}

	tag, err := cfg.LocaleTag()
	if err != nil {
		t.Fatalf("locale: %v", err)
	}
	if tag.String() != "sv" {
		t.Errorf("LocaleTag = %v, expected sv", tag)
	}
}

func TestLoadFile_UnknownBackend(t *testing.T) {
	path := writeConfig(t, `
[storage]
backend = "postgres"
`)

	_, err := config.LoadFile(path)
	if !errors.Is(err, kv.ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}

func TestLoadFile_InvalidLocale(t *testing.T) {
	path := writeConfig(t, `
[view]
locale = "not a locale!"
`)

	if _, err := config.LoadFile(path); err == nil {
		t.Fatal("expected error for invalid locale")
	}
}

func TestLoadFile_ParseError(t *testing.T) {
	path := writeConfig(t, `[storage`)

	if _, err := config.LoadFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFile_EmptyLocaleMeansEnglish(t *testing.T) {
	path := writeConfig(t, `
[view]
locale = ""
`)

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tag, err := cfg.LocaleTag()
	if err != nil {
		t.Fatalf("locale: %v", err)
	}
	if tag.String() != language.English.String() {
		t.Errorf("LocaleTag = %v, expected en", tag)
	}
}
