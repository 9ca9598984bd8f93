package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start an interactive game.

Controls:
  Left/H, Right/L  - Move
  Up/X/Z           - Rotate
  Down/J           - Soft drop
  Space            - Hard drop
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  ?                - Toggle key help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 1s between falls at level 1
  normal - 800ms between falls at level 1
  hard   - 500ms between falls at level 1
  fixed  - 800ms at every level

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --seed 42 --log /tmp/tetris.log
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logFile, err := openLogFile(flagLog)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newLogger(logFile)

	gameCfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: gameCfg.Loop.TickInterval,
		Seed:         flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score persistence", "err", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(cfg, gameCfg, store, logger); err != nil {
		logger.Error("game exited with error", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
