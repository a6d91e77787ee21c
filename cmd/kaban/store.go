package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/amonks/kaban/board"
	"github.com/amonks/kaban/internal/config"
	"github.com/amonks/kaban/internal/kv"
	"github.com/amonks/kaban/internal/logging"
	"github.com/amonks/kaban/persist"
)

// app bundles everything a command needs to read and change the board.
type app struct {
	cfg      *config.Config
	stateDir string
	locale   language.Tag
	logger   *log.Logger
	kv       kv.Store
	logFile  io.Closer
	bridge   *persist.Bridge
	store    *board.Store
}

type openOptions struct {
	// logOutput receives diagnostics. Defaults to stderr.
	logOutput io.Writer
	// logToFile sends diagnostics to kaban.log in the state dir instead.
	logToFile bool
}

// openApp loads the config, opens the configured storage and loads the board.
func openApp(opts openOptions) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	stateDir, err := cfg.StateDir()
	if err != nil {
		return nil, err
	}
	locale, err := cfg.LocaleTag()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	level := logging.ParseLevel(cfg.Log.Level)
	var logger *log.Logger
	var logFile io.Closer
	if opts.logToFile {
		logger, logFile, err = logging.OpenFile(stateDir, level)
		if err != nil {
			return nil, err
		}
	} else {
		output := opts.logOutput
		if output == nil {
			output = os.Stderr
		}
		logOpts := logging.DefaultOptions()
		logOpts.Level = level
		logger = logging.New(output, logOpts)
	}

	store, err := kv.Open(kv.Backend(cfg.Storage.Backend), stateDir)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, err
	}

	bridge := persist.New(store, persist.WithLogger(logger))
	logger.Debug("opened storage", "backend", cfg.Storage.Backend, "dir", stateDir)

	return &app{
		cfg:      cfg,
		stateDir: stateDir,
		locale:   locale,
		logger:   logger,
		kv:       store,
		logFile:  logFile,
		bridge:   bridge,
		store:    board.New(bridge, board.WithLogger(logger)),
	}, nil
}

// Close releases the storage backend and the log file, if any.
func (a *app) Close() error {
	err := a.kv.Close()
	if a.logFile != nil {
		err = errors.Join(err, a.logFile.Close())
	}
	return err
}

// saved reports the failure of the most recent write, if any.
// The store keeps the change in memory either way, so a CLI invocation
// has to surface the error itself.
func (a *app) saved() error {
	if err := a.store.Err(); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

// withApp opens the board for cmd, logging to its stderr, and closes it
// after fn returns.
func withApp(cmd *cobra.Command, fn func(*app) error) error {
	a, err := openApp(openOptions{logOutput: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	return errors.Join(fn(a), a.Close())
}
