package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Piece is the active tetromino. X and Y locate the top-left corner of its
// 4x4 bounding box in board coordinates; Y is negative while the piece is
// still partially above the visible board.
type Piece struct {
	Shape    Shape
	Rotation Rotation
	X, Y     int
}

// Bitmap returns the occupancy grid for the piece's current rotation.
func (p Piece) Bitmap() Bitmap {
	return p.Shape.Bitmap(p.Rotation)
}

// Moved returns a copy of the piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece turned one step clockwise in place.
func (p Piece) Rotated() Piece {
	p.Rotation = p.Rotation.Next()
	return p
}

// Cells returns the board coordinates of every occupied cell, including any
// that are above the board (negative Y).
func (p Piece) Cells() []core.Point {
	bm := p.Bitmap()
	cells := make([]core.Point, 0, 4)
	for ry := 0; ry < BoxSize; ry++ {
		for rx := 0; rx < BoxSize; rx++ {
			if bm.Filled(rx, ry) {
				cells = append(cells, core.Point{X: p.X + rx, Y: p.Y + ry})
			}
		}
	}
	return cells
}
