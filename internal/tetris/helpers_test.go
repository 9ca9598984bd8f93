package tetris

// fixedRand returns a repeating sequence of values, reduced mod n.
type fixedRand struct {
	values []int
	i      int
}

func newFixedRand(values ...int) *fixedRand {
	return &fixedRand{values: values}
}

func (r *fixedRand) Intn(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.i%len(r.values)]
	r.i++
	return v % n
}

// fillRow fills row y except for the listed columns.
func fillRow(b *Board, y int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < Width; x++ {
		if !skip[x] {
			b.Fill(x, y)
		}
	}
}

// noFullRows reports whether the board has no completely filled row.
func noFullRows(b *Board) bool {
	for y := 0; y < Height; y++ {
		if b.RowFull(y) {
			return false
		}
	}
	return true
}
