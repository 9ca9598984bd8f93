package tetris

// Board dimensions. The well is fixed at 10x20.
const (
	Width  = 10
	Height = 20
)

// Board is the occupancy grid of locked cells.
// Only Lock and ClearLines change it during play.
type Board struct {
	cells [Height][Width]bool
}

// Filled reports whether the cell at (x, y) is occupied.
// Coordinates outside the board report false.
func (b *Board) Filled(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return b.cells[y][x]
}

// Fill marks a single cell as occupied. Out-of-range cells are ignored.
func (b *Board) Fill(x, y int) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	b.cells[y][x] = true
}

// RowFull reports whether every cell of row y is occupied.
func (b *Board) RowFull(y int) bool {
	for x := 0; x < Width; x++ {
		if !b.cells[y][x] {
			return false
		}
	}
	return true
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	n := 0
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] {
				n++
			}
		}
	}
	return n
}

// Fits reports whether the piece can occupy its position on the board.
// A cell is illegal when it is left of, right of or below the board, or
// when it lands on a filled cell. Cells above the board (y < 0) are legal
// regardless of column content, which is what lets pieces spawn one row high.
func Fits(p Piece, b *Board) bool {
	bm := p.Bitmap()
	for ry := 0; ry < BoxSize; ry++ {
		for rx := 0; rx < BoxSize; rx++ {
			if !bm.Filled(rx, ry) {
				continue
			}
			bx, by := p.X+rx, p.Y+ry
			if bx < 0 || bx >= Width || by >= Height {
				return false
			}
			if by >= 0 && b.cells[by][bx] {
				return false
			}
		}
	}
	return true
}

// Lock writes the piece's occupied cells into the board.
// Cells above the board are dropped and never represented in the grid.
func Lock(p Piece, b *Board) {
	for _, c := range p.Cells() {
		b.Fill(c.X, c.Y)
	}
}

// ClearLines removes every full row and returns how many were removed.
//
// Rows are scanned bottom to top. When row y is full, everything above it
// shifts down one row, row 0 becomes empty, and row y is examined again
// before the scan moves up, since the row that slid into y may be full too.
func (b *Board) ClearLines() int {
	cleared := 0
	y := Height - 1
	for y >= 0 {
		if !b.RowFull(y) {
			y--
			continue
		}
		b.collapse(y)
		cleared++
		// Re-examine y without advancing.
	}
	return cleared
}

// collapse removes row y by shifting every row above it down by one.
func (b *Board) collapse(y int) {
	for yy := y; yy > 0; yy-- {
		b.cells[yy] = b.cells[yy-1]
	}
	b.cells[0] = [Width]bool{}
}
