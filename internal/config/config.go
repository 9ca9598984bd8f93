// Package config provides YAML-based game configuration loading and
// difficulty presets for tetris.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// TetrisConfig contains all tunable timing for a game.
type TetrisConfig struct {
	Gravity GravityConfig `yaml:"gravity"`
	Loop    LoopSettings  `yaml:"loop"`
}

// GravityConfig controls automatic falling.
type GravityConfig struct {
	BaseInterval time.Duration `yaml:"base_interval"` // Fall interval at level 1
	LevelScaling bool          `yaml:"level_scaling"` // false keeps the base interval at every level
}

// LoopSettings controls the game loop cadence.
type LoopSettings struct {
	TickInterval time.Duration `yaml:"tick_interval"` // Idle period between ticks
}

// ErrInvalidInterval is returned by Validate for non-positive durations.
var ErrInvalidInterval = errors.New("interval must be positive")

// Validate checks that the configuration is usable.
func (c TetrisConfig) Validate() error {
	if c.Gravity.BaseInterval <= 0 {
		return fmt.Errorf("config: gravity.base_interval %s: %w", c.Gravity.BaseInterval, ErrInvalidInterval)
	}
	if c.Loop.TickInterval <= 0 {
		return fmt.Errorf("config: loop.tick_interval %s: %w", c.Loop.TickInterval, ErrInvalidInterval)
	}
	return nil
}

// LoopConfig converts the configuration into game loop settings.
func (c TetrisConfig) LoopConfig() tetris.LoopConfig {
	return tetris.LoopConfig{
		BaseInterval: c.Gravity.BaseInterval,
		LevelScaling: c.Gravity.LevelScaling,
		Idle:         c.Loop.TickInterval,
	}
}
