package tetris

import "github.com/kamstrup/intmap"

// MaxClear is the most rows a single piece can clear.
const MaxClear = 4

// Stats counts per-session events that are not part of the score.
type Stats struct {
	clears *intmap.Map[int, int] // rows cleared in one lock -> number of locks
	pieces int
}

func newStats() Stats {
	return Stats{clears: intmap.New[int, int](MaxClear)}
}

func (s *Stats) recordClear(n int) {
	if n <= 0 {
		return
	}
	count, _ := s.clears.Get(n)
	s.clears.Put(n, count+1)
}

func (s *Stats) recordSpawn() {
	s.pieces++
}

// Clears returns how many locks cleared exactly n rows.
func (s Stats) Clears(n int) int {
	if s.clears == nil {
		return 0
	}
	count, _ := s.clears.Get(n)
	return count
}

// Pieces returns how many pieces have been spawned, including the one that
// ended the game.
func (s Stats) Pieces() int {
	return s.pieces
}

// Histogram returns the clear counts indexed by rows cleared (index 0 unused).
func (s Stats) Histogram() [MaxClear + 1]int {
	var h [MaxClear + 1]int
	for n := 1; n <= MaxClear; n++ {
		h[n] = s.Clears(n)
	}
	return h
}
