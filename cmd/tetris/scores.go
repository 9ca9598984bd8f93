package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagLimit       int
	flagBoard       bool
	flagAutoplayIDs bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

Examples:
  tetris scores
  tetris scores --limit 25
  tetris scores --autoplay
  tetris scores --board
  tetris scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Browse scores in an interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagAutoplayIDs, "autoplay", false, "Show scores saved by autoplay runs")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the selected scores")
}

func runScores(cmd *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			return fmt.Errorf("running scoreboard: %w", err)
		}
		return nil
	}

	gameID, title := storage.GameTetris, "Tetris"
	if flagAutoplayIDs {
		gameID, title = storage.GameAutoplay, "Autoplay"
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID)
		return nil
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'tetris play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %-5s  %s\n", "Rank", "Score", "Level", "Lines", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %-5d  %-5d  %s\n", i+1, entry.Score, entry.Level, entry.Lines, dateStr)
	}

	fmt.Fprintln(out)
	stats, err := store.Stats(gameID)
	if err != nil {
		logger.Warn("could not load stats", "err", err)
		return nil
	}
	fmt.Fprintf(out, "Best: %d  Games: %d  Average: %.0f  Total lines: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines)
	return nil
}
