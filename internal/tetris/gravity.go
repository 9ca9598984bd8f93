package tetris

import "time"

// DefaultBaseInterval is the fall interval at level 1.
const DefaultBaseInterval = 800 * time.Millisecond

// Gravity schedules automatic one-row falls. The interval shrinks with the
// level and is computed fresh from the level on every check.
type Gravity struct {
	base         time.Duration
	levelScaling bool
	last         time.Time
}

// NewGravity creates a scheduler whose timer starts at now.
// When levelScaling is false the base interval applies at every level.
func NewGravity(base time.Duration, levelScaling bool, now time.Time) *Gravity {
	if base <= 0 {
		base = DefaultBaseInterval
	}
	return &Gravity{
		base:         base,
		levelScaling: levelScaling,
		last:         now,
	}
}

// Interval returns the fall interval for a level:
// base / (1 + (level-1) * 0.1).
func (g *Gravity) Interval(level int) time.Duration {
	if !g.levelScaling || level <= 1 {
		return g.base
	}
	return time.Duration(float64(g.base) / (1.0 + float64(level-1)*0.1))
}

// Elapsed returns the time since the last fall step or reset.
func (g *Gravity) Elapsed(now time.Time) time.Duration {
	return now.Sub(g.last)
}

// Due reports whether a fall step should happen at now.
func (g *Gravity) Due(now time.Time, level int) bool {
	return g.Elapsed(now) >= g.Interval(level)
}

// Reset restarts the timer at now.
func (g *Gravity) Reset(now time.Time) {
	g.last = now
}
