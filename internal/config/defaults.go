package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded configuration used when no
// YAML source can be read.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gravity: GravityConfig{
			BaseInterval: tetris.DefaultBaseInterval,
			LevelScaling: true,
		},
		Loop: LoopSettings{
			TickInterval: 20 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
