// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play              - Play interactively
//	tetris scores            - Show high scores
//	tetris autoplay          - Run headless games with random input
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for a reproducible piece sequence
//	--db <path>          - Set database path (default: ~/.tetris/scores.db)
//	--config <path>      - Path to a custom config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log <path>         - Write logs to a file during interactive play
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLog        string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - Stack falling blocks in your terminal",
	Long: `Tetris is the classic falling-block puzzle game for the terminal.

Available commands:
  play      - Play a game
  scores    - View high scores
  autoplay  - Run headless games driven by random input

Examples:
  tetris play
  tetris play --difficulty hard
  tetris scores --board
  tetris autoplay --games 20 --seed 7`,
	SilenceUsage:  true,
	SilenceErrors: true, // main prints the error once
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Log file for interactive play")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(autoplayCmd)
}
