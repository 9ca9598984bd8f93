package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s := NewSession(newFixedRand(int(ShapeT), int(ShapeL), int(ShapeO)))

	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 0, s.Lines())
	assert.False(t, s.Terminal())
	assert.Equal(t, Piece{Shape: ShapeT, Rotation: 0, X: 3, Y: -1}, s.Current())
	assert.Equal(t, ShapeL, s.Next())
	assert.Equal(t, 1, s.Stats().Pieces())
}

func TestSpawnFollowsRandomSequence(t *testing.T) {
	seq := []int{2, 5, 0, 6, 3}
	s := NewSession(newFixedRand(seq...))

	for i := 0; i < 3; i++ {
		assert.Equal(t, Shape(seq[i]), s.Current().Shape)
		assert.Equal(t, Shape(seq[i+1]), s.Next())
		s.HardDrop()
	}
}

func TestScenarioSingleLineClear(t *testing.T) {
	s := NewSession(newFixedRand(int(ShapeO)))
	fillRow(&s.board, 19, 9)
	// Vertical I whose only column is board column 9.
	s.current = Piece{Shape: ShapeI, Rotation: 1, X: 7, Y: 0}

	out := s.HardDrop()

	assert.True(t, out.Locked)
	assert.Equal(t, 1, out.Cleared)
	assert.Equal(t, 40, out.Points)
	assert.Equal(t, 40, s.Score())
	assert.Equal(t, 1, s.Lines())
	assert.Equal(t, 1, s.Level())
	assert.False(t, out.LevelUp)
	// The three I cells above row 19 slid down one row.
	assert.Equal(t, 3, s.board.FilledCount())
	for y := 17; y < Height; y++ {
		assert.True(t, s.board.Filled(9, y))
	}
	assert.True(t, noFullRows(&s.board))
}

func TestScenarioTenSingleClearsLevelUp(t *testing.T) {
	s := NewSession(newFixedRand(int(ShapeO)))

	for i := 1; i <= 10; i++ {
		fillRow(&s.board, 19, 0, 1, 2, 3)
		s.current = Piece{Shape: ShapeI, X: 0, Y: SpawnY}

		out := s.HardDrop()
		require.Equal(t, 1, out.Cleared, "clear #%d", i)
		require.Equal(t, 40, out.Points, "clear #%d scores at level 1", i)
		assert.Equal(t, i, s.Lines())

		if i < 10 {
			assert.Equal(t, 1, s.Level(), "level after clear #%d", i)
			assert.False(t, out.LevelUp)
		} else {
			assert.Equal(t, 2, s.Level(), "level after clear #10")
			assert.True(t, out.LevelUp)
		}
		require.Equal(t, 0, s.board.FilledCount())
	}
	assert.Equal(t, 400, s.Score())

	// The eleventh clear is scored at level 2.
	fillRow(&s.board, 19, 0, 1, 2, 3)
	s.current = Piece{Shape: ShapeI, X: 0, Y: SpawnY}
	out := s.HardDrop()
	assert.Equal(t, 80, out.Points)
	assert.Equal(t, 480, s.Score())
}

func TestScoringUsesLevelBeforeClear(t *testing.T) {
	tests := []struct {
		name      string
		rows      int
		level     int
		lines     int
		points    int
		wantLevel int
	}{
		{"single", 1, 1, 0, 40, 1},
		{"double crossing level", 2, 3, 28, 300, 4},
		{"triple", 3, 2, 12, 600, 2},
		{"tetris at level 3", 4, 3, 25, 3600, 3},
		{"tetris crossing level", 4, 1, 8, 1200, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(newFixedRand(int(ShapeO)))
			s.level = tc.level
			s.lines = tc.lines
			for y := Height - tc.rows; y < Height; y++ {
				fillRow(&s.board, y, 9)
			}
			s.current = Piece{Shape: ShapeI, Rotation: 1, X: 7, Y: 0}

			out := s.HardDrop()

			assert.Equal(t, tc.rows, out.Cleared)
			assert.Equal(t, tc.points, out.Points)
			assert.Equal(t, tc.points, s.Score())
			assert.Equal(t, tc.lines+tc.rows, s.Lines())
			assert.Equal(t, tc.wantLevel, s.Level())
			assert.Equal(t, LevelForLines(s.Lines()), s.Level())
			assert.Equal(t, 1, s.Stats().Clears(tc.rows))
		})
	}
}

func TestMoveLeftAtWallIsNoOp(t *testing.T) {
	s := NewSession(newFixedRand(int(ShapeJ)))
	s.current = Piece{Shape: ShapeJ, X: 0, Y: 5}

	assert.False(t, s.MoveLeft())
	assert.Equal(t, 0, s.Current().X)

	// Leftmost occupied column is 0 even though the box starts at -2.
	s.current = Piece{Shape: ShapeI, Rotation: 1, X: -2, Y: 5}
	assert.False(t, s.MoveLeft())
	assert.Equal(t, -2, s.Current().X)
}

func TestMoveRightAndBack(t *testing.T) {
	s := NewSession(newFixedRand(int(ShapeT)))
	start := s.Current()

	assert.True(t, s.MoveRight())
	assert.Equal(t, start.X+1, s.Current().X)
	assert.True(t, s.MoveLeft())
	assert.Equal(t, start, s.Current())
}

func TestMoveRightBlockedByStack(t *testing.T) {
	s := NewSession(newFixedRand(int(ShapeO)))
	s.current = Piece{Shape: ShapeO, X: 2, Y: 10}
	s.board.Fill(5, 11)

	assert.False(t, s.MoveRight())
	assert.Equal(t, 2, s.Current().X)
}

func TestRotateCyclesInPlace(t *testing.T) {
	s := NewSession(newFixedRand(int(ShapeT)))
	s.current = Piece{Shape: ShapeT, X: 4, Y: 8}

	for i := 1; i <= 4; i++ {
		require.True(t, s.Rotate())
		assert.Equal(t, Rotation(i%4), s.Current().Rotation)
		assert.Equal(t, 4, s.Current().X)
		assert.Equal(t, 8, s.Current().Y)
	}
}

func TestRotateAgainstWallHasNoKick(t *testing.T) {
	s := NewSession(newFixedRand(int(ShapeI)))
	// Vertical I in column 9; the flat rotation would need columns 7..10.
	s.current = Piece{Shape: ShapeI, Rotation: 1, X: 7, Y: 5}

	assert.False(t, s.Rotate())
	assert.Equal(t, Piece{Shape: ShapeI, Rotation: 1, X: 7, Y: 5}, s.Current())
}

func TestFallMovesThenLocks(t *testing.T) {
	s := NewSession(newFixedRand(int(ShapeO), int(ShapeT)))
	s.current = Piece{Shape: ShapeO, X: 0, Y: 17}

	out := s.Fall()
	assert.True(t, out.Moved)
	assert.False(t, out.Locked)
	assert.Equal(t, 18, s.Current().Y)

	out = s.Fall()
	assert.False(t, out.Moved)
	assert.True(t, out.Locked)
	assert.Equal(t, 4, s.board.FilledCount())
	assert.True(t, s.board.Filled(1, 19))
	assert.Equal(t, SpawnY, s.Current().Y, "next piece spawned")
}

func TestSoftDropMatchesFall(t *testing.T) {
	a := NewSession(newFixedRand(1, 2, 3, 4))
	b := NewSession(newFixedRand(1, 2, 3, 4))

	for i := 0; i < 60; i++ {
		oa := a.Fall()
		ob := b.SoftDrop()
		require.Equal(t, oa, ob)
	}
	assert.Equal(t, a.Board(), b.Board())
	assert.Equal(t, a.Current(), b.Current())
}

func TestHardDropLandsOnStack(t *testing.T) {
	s := NewSession(newFixedRand(int(ShapeO)))
	s.board.Fill(4, 15)
	s.current = Piece{Shape: ShapeO, X: 3, Y: SpawnY}

	out := s.HardDrop()

	assert.True(t, out.Moved)
	assert.True(t, out.Locked)
	assert.True(t, s.board.Filled(4, 14))
	assert.True(t, s.board.Filled(5, 13))
	assert.Equal(t, 5, s.board.FilledCount())
}

func TestGameOverOnBlockedSpawn(t *testing.T) {
	s := NewSession(newFixedRand(int(ShapeO)))
	// Every shape's spawn rotation touches board row 0 within columns 3..6.
	for x := 3; x <= 6; x++ {
		s.board.Fill(x, 0)
	}
	s.current = Piece{Shape: ShapeO, X: -1, Y: 10}
	s.score = 1234

	out := s.HardDrop()

	require.True(t, out.GameOver)
	assert.True(t, s.Terminal())
	assert.Equal(t, 1234, s.Score())

	frozen := s.Board()
	piece := s.Current()
	assert.False(t, s.MoveLeft())
	assert.False(t, s.MoveRight())
	assert.False(t, s.Rotate())
	assert.Equal(t, Outcome{}, s.Fall())
	assert.Equal(t, Outcome{}, s.HardDrop())
	assert.Equal(t, Outcome{}, s.SoftDrop())
	assert.Equal(t, frozen, s.Board())
	assert.Equal(t, piece, s.Current())
	assert.Equal(t, 1234, s.Score())
}

func TestGameOverEveryShape(t *testing.T) {
	for shape := Shape(0); shape < ShapeCount; shape++ {
		t.Run(shape.String(), func(t *testing.T) {
			s := NewSession(newFixedRand(int(shape)))
			for x := 3; x <= 6; x++ {
				s.board.Fill(x, 0)
			}
			s.current = Piece{Shape: ShapeO, X: -1, Y: 10}

			assert.True(t, s.HardDrop().GameOver)
		})
	}
}

func TestPlayUntilGameOver(t *testing.T) {
	s := NewSession(newFixedRand(0, 3, 5, 1, 6, 2, 4))
	drops := 0
	for !s.Terminal() {
		s.HardDrop()
		drops++
		require.Less(t, drops, 500, "stacking in the center must end the game")
		require.True(t, noFullRows(&s.board))
	}
	assert.Equal(t, drops+1, s.Stats().Pieces())
}
