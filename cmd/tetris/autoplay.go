package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	flagGames int
	flagSave  bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Run headless games with random input",
	Long: `Play games without a terminal UI. Input comes from a seeded random
source and time runs on a simulated clock, so a run finishes in moments and
the same seed always produces the same results.

Examples:
  tetris autoplay
  tetris autoplay --games 50 --seed 7
  tetris autoplay --games 10 --save`,
	Args: cobra.NoArgs,
	RunE: runAutoplay,
}

func init() {
	autoplayCmd.Flags().IntVar(&flagGames, "games", 5, "Number of games to play")
	autoplayCmd.Flags().BoolVar(&flagSave, "save", false, "Save final scores under the autoplay board")
}

// autoplayResult is the summary of one headless game.
type autoplayResult struct {
	Seed   int64
	Score  int
	Level  int
	Lines  int
	Pieces int
	Clears [tetris.MaxClear + 1]int
}

// playHeadless runs one game to completion on a manual clock.
func playHeadless(ctx context.Context, cfg tetris.LoopConfig, seed int64) (autoplayResult, error) {
	rng := rand.New(rand.NewSource(seed))
	clock := tetris.NewManualClock(time.Unix(0, 0))
	cfg.StopOnGameOver = true

	loop := tetris.NewLoop(cfg, rng, clock, tetris.NewRandomInput(rng), nil)
	res, err := loop.Run(ctx)
	if err != nil {
		return autoplayResult{}, err
	}

	snap := res.Snapshot
	return autoplayResult{
		Seed:   seed,
		Score:  snap.FinalScore,
		Level:  snap.Level,
		Lines:  snap.Lines,
		Pieces: snap.Pieces,
		Clears: snap.Clears,
	}, nil
}

func runAutoplay(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr)

	gameCfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var store *storage.Store
	if flagSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("opening scores database: %w", err)
		}
		defer store.Close()
	}

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	best := 0
	for i, games := 0, flagGames; i < games; i++ {
		seed := baseSeed + int64(i)
		result, err := playHeadless(ctx, gameCfg.LoopConfig(), seed)
		if err != nil {
			logger.Warn("autoplay interrupted", "game", i+1, "err", err)
			return nil
		}

		logger.Info("game over",
			"game", i+1,
			"seed", result.Seed,
			"score", result.Score,
			"level", result.Level,
			"lines", result.Lines,
			"pieces", result.Pieces,
			"clears", fmt.Sprintf("%d/%d/%d/%d", result.Clears[1], result.Clears[2], result.Clears[3], result.Clears[4]),
		)
		best = max(best, result.Score)

		if store != nil && result.Score > 0 {
			if _, err := store.SaveScore(storage.Entry{
				GameID: storage.GameAutoplay,
				Score:  result.Score,
				Level:  result.Level,
				Lines:  result.Lines,
			}); err != nil {
				logger.Error("could not save score", "err", err)
			}
		}
	}

	logger.Info("autoplay finished", "games", flagGames, "best", best)
	return nil
}
