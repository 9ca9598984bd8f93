package core

import "time"

// RuntimeConfig contains configuration passed to a game session at start.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Idle period between loop iterations
	Seed         int64         // RNG seed for deterministic shape sequences
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 20 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// TickRate returns the number of loop iterations per second.
func (c RuntimeConfig) TickRate() int {
	if c.TickInterval <= 0 {
		return 0
	}
	return int(time.Second / c.TickInterval)
}
