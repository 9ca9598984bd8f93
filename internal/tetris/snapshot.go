package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Snapshot is everything a display needs to draw one frame.
type Snapshot struct {
	Width, Height int
	Cells         [Height][Width]bool // Locked cells
	Piece         []core.Point        // Active piece cells on the board (y >= 0)
	Shape         Shape               // Active piece shape
	Next          Shape               // Upcoming shape for the preview
	Score         int
	Level         int
	Lines         int
	Terminal      bool
	FinalScore    int // Equal to Score once Terminal is set, 0 before
	Interval      time.Duration
	Clears        [MaxClear + 1]int // Locks per rows cleared
	Pieces        int
}

// Snapshot captures the session for display.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Width:    Width,
		Height:   Height,
		Cells:    s.board.cells,
		Shape:    s.current.Shape,
		Next:     s.next,
		Score:    s.score,
		Level:    s.level,
		Lines:    s.lines,
		Terminal: s.terminal,
		Clears:   s.stats.Histogram(),
		Pieces:   s.stats.Pieces(),
	}
	for _, c := range s.current.Cells() {
		if c.Y >= 0 && c.Y < Height && c.X >= 0 && c.X < Width {
			snap.Piece = append(snap.Piece, c)
		}
	}
	if s.terminal {
		snap.FinalScore = s.score
	}
	return snap
}

// Occupied reports whether (x, y) is filled by the board or the active piece.
func (s Snapshot) Occupied(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	if s.Cells[y][x] {
		return true
	}
	return s.hasPiece(x, y)
}

func (s Snapshot) hasPiece(x, y int) bool {
	for _, p := range s.Piece {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}
