// Package config handles loading the kaban config.toml file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/amonks/kaban/internal/kv"
	"github.com/amonks/kaban/internal/paths"
)

// Config represents the config.toml file.
type Config struct {
	Storage Storage `toml:"storage"`
	Log     Log     `toml:"log"`
	View    View    `toml:"view"`
}

// Storage selects where tasks are kept.
type Storage struct {
	// Backend is "file" (one JSON file per key) or "sqlite".
	Backend string `toml:"backend"`
	// Dir holds the state files. A leading "~" expands to the home directory.
	Dir string `toml:"dir"`
}

// Log contains logging configuration.
type Log struct {
	Level string `toml:"level"`
}

// View contains presentation settings.
type View struct {
	// Locale is a BCP 47 tag used to collate titles.
	Locale string `toml:"locale"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Storage: Storage{Backend: string(kv.BackendFile)},
		Log:     Log{Level: "warn"},
		View:    View{Locale: "en"},
	}
}

// Load reads the config file named by paths.ConfigPath.
// Returns the defaults if the file does not exist.
func Load() (*Config, error) {
	path, err := paths.ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the config file at path over the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var fileCfg Config
	meta, err := toml.Decode(string(data), &fileCfg)
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg := merge(Default(), &fileCfg, meta)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func merge(defaults, fileCfg *Config, meta toml.MetaData) *Config {
	merged := *defaults
	merged.Storage.Backend = mergeString(meta.IsDefined("storage", "backend"), fileCfg.Storage.Backend, defaults.Storage.Backend)
	merged.Storage.Dir = mergeString(meta.IsDefined("storage", "dir"), fileCfg.Storage.Dir, defaults.Storage.Dir)
	merged.Log.Level = mergeString(meta.IsDefined("log", "level"), fileCfg.Log.Level, defaults.Log.Level)
	merged.View.Locale = mergeString(meta.IsDefined("view", "locale"), fileCfg.View.Locale, defaults.View.Locale)
	return &merged
}

func mergeString(defined bool, value, fallback string) string {
	if !defined {
		return fallback
	}
	return strings.TrimSpace(value)
}

// Validate checks the values that cannot be defaulted at use.
func (c *Config) Validate() error {
	switch kv.Backend(c.Storage.Backend) {
	case kv.BackendFile, kv.BackendSQLite:
	default:
		return fmt.Errorf("%w: %q", kv.ErrUnknownBackend, c.Storage.Backend)
	}
	if _, err := c.LocaleTag(); err != nil {
		return err
	}
	return nil
}

// StateDir returns the expanded storage directory.
func (c *Config) StateDir() (string, error) {
	return paths.ResolveWithDefault(c.Storage.Dir, paths.DefaultStateDir)
}

// LocaleTag parses View.Locale. An empty locale means English.
func (c *Config) LocaleTag() (language.Tag, error) {
	if c.View.Locale == "" {
		return language.English, nil
	}
	tag, err := language.Parse(c.View.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", c.View.Locale, err)
	}
	return tag, nil
}
