package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// newLogger creates the structured logger used by every command.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	})
}

// openLogFile opens the --log target for appending. With no path, logs are
// discarded so they cannot corrupt the game screen.
func openLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// loadConfig resolves the game configuration from --config and --difficulty.
func loadConfig(logger *log.Logger) (config.TetrisConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.TetrisConfig{}, err
	}

	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, err
	}
	if src == config.SourceBuiltin {
		logger.Warn("embedded config unreadable, using builtin defaults")
	}

	config.ApplyPreset(&cfg, preset)
	logger.Debug("config loaded",
		"source", src,
		"difficulty", preset,
		"base_interval", cfg.Gravity.BaseInterval,
		"level_scaling", cfg.Gravity.LevelScaling,
		"tick_interval", cfg.Loop.TickInterval,
	)
	return cfg, nil
}
