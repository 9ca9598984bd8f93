// Package tetris implements the falling-block simulation: the shape catalog,
// fit checking, locking, line clearing, scoring, spawning, gravity timing and
// the single-threaded game loop that ties them together.
//
// Like the other games in this tree it has no terminal dependencies. The
// platform layer feeds actions in and draws the Snapshot it gets back.
package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Shape identifies one of the seven tetrominoes.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ

	// ShapeCount is the number of shapes in the catalog.
	ShapeCount = 7
)

// Rotation is a clockwise quarter-turn index into a shape's bitmaps.
type Rotation uint8

// RotationCount is the number of precomputed rotations per shape.
const RotationCount = 4

// Next returns the following clockwise rotation.
func (r Rotation) Next() Rotation {
	return (r + 1) % RotationCount
}

// BoxSize is the side of the square frame rotations are defined in.
const BoxSize = 4

// Bitmap is a 4x4 row-major occupancy grid packed into 16 bits.
// Bit ry*4+rx is set when cell (rx, ry) is occupied.
type Bitmap uint16

// Filled reports whether cell (rx, ry) of the bounding box is occupied.
func (b Bitmap) Filled(rx, ry int) bool {
	if rx < 0 || rx >= BoxSize || ry < 0 || ry >= BoxSize {
		return false
	}
	return b&(1<<(ry*BoxSize+rx)) != 0
}

// bitmap builds a Bitmap from four rows of four characters ('#' = filled).
func bitmap(rows ...string) Bitmap {
	var b Bitmap
	for ry, row := range rows {
		for rx, ch := range row {
			if ch == '#' {
				b |= 1 << (ry*BoxSize + rx)
			}
		}
	}
	return b
}

// catalog holds every rotation of every shape. It is built once and never
// written to again, so concurrent reads are safe.
var catalog = [ShapeCount][RotationCount]Bitmap{
	ShapeI: {
		bitmap("....", "####", "....", "...."),
		bitmap("..#.", "..#.", "..#.", "..#."),
		bitmap("....", "....", "####", "...."),
		bitmap(".#..", ".#..", ".#..", ".#.."),
	},
	ShapeJ: {
		bitmap("#...", "###.", "....", "...."),
		bitmap(".##.", ".#..", ".#..", "...."),
		bitmap("....", "###.", "..#.", "...."),
		bitmap(".#..", ".#..", "##..", "...."),
	},
	ShapeL: {
		bitmap("..#.", "###.", "....", "...."),
		bitmap(".#..", ".#..", ".##.", "...."),
		bitmap("....", "###.", "#...", "...."),
		bitmap("##..", ".#..", ".#..", "...."),
	},
	ShapeO: {
		bitmap(".##.", ".##.", "....", "...."),
		bitmap(".##.", ".##.", "....", "...."),
		bitmap(".##.", ".##.", "....", "...."),
		bitmap(".##.", ".##.", "....", "...."),
	},
	ShapeS: {
		bitmap(".##.", "##..", "....", "...."),
		bitmap(".#..", ".##.", "..#.", "...."),
		bitmap("....", ".##.", "##..", "...."),
		bitmap("#...", "##..", ".#..", "...."),
	},
	ShapeT: {
		bitmap(".#..", "###.", "....", "...."),
		bitmap(".#..", ".##.", ".#..", "...."),
		bitmap("....", "###.", ".#..", "...."),
		bitmap(".#..", "##..", ".#..", "...."),
	},
	ShapeZ: {
		bitmap("##..", ".##.", "....", "...."),
		bitmap("..#.", ".##.", ".#..", "...."),
		bitmap("....", "##..", ".##.", "...."),
		bitmap(".#..", "##..", "#...", "...."),
	},
}

// Bitmap returns the occupancy grid for the shape at the given rotation.
// An out-of-range shape or rotation is a programming error and panics.
func (s Shape) Bitmap(r Rotation) Bitmap {
	if s >= ShapeCount || r >= RotationCount {
		panic(fmt.Sprintf("tetris: invalid piece shape=%d rotation=%d", s, r))
	}
	return catalog[s][r]
}

// String returns the conventional letter for the shape.
func (s Shape) String() string {
	if s >= ShapeCount {
		return "?"
	}
	return string("IJLOSTZ"[s])
}

// Color returns the display color used for the active piece.
func (s Shape) Color() core.Color {
	switch s {
	case ShapeI:
		return core.ColorCyan
	case ShapeJ:
		return core.ColorBlue
	case ShapeL:
		return core.ColorOrange
	case ShapeO:
		return core.ColorYellow
	case ShapeS:
		return core.ColorGreen
	case ShapeT:
		return core.ColorMagenta
	case ShapeZ:
		return core.ColorRed
	default:
		return core.ColorDefault
	}
}
