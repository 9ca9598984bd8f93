package core

import (
	"testing"
	"time"
)

func TestTickRate(t *testing.T) {
	tests := []struct {
		interval time.Duration
		expected int
	}{
		{20 * time.Millisecond, 50},
		{time.Second, 1},
		{0, 0},
	}

	for _, tc := range tests {
		cfg := RuntimeConfig{TickInterval: tc.interval}
		if got := cfg.TickRate(); got != tc.expected {
			t.Errorf("TickRate(%v) = %d, expected %d", tc.interval, got, tc.expected)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ScreenW != 80 || cfg.ScreenH != 24 {
		t.Errorf("DefaultConfig size = %dx%d, expected 80x24", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.Seed != 0 {
		t.Errorf("DefaultConfig seed = %d, expected 0", cfg.Seed)
	}
}
