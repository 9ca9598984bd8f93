package tetris

// Rand is the random source used to draw upcoming shapes.
// *rand.Rand satisfies it; tests inject fixed sequences.
type Rand interface {
	Intn(n int) int
}

// SpawnX and SpawnY place a new piece's bounding box centered on the top
// edge, one row above the visible board.
const (
	SpawnX = Width/2 - BoxSize/2
	SpawnY = -1
)

// Outcome describes what a single step or action did to the session.
type Outcome struct {
	Moved    bool // The active piece changed position or rotation
	Locked   bool // The active piece was written into the board
	Cleared  int  // Rows removed by the lock
	Points   int  // Score awarded for the cleared rows
	LevelUp  bool // The level increased as a result of the clear
	GameOver bool // The next piece could not be placed
}

func (o Outcome) merge(other Outcome) Outcome {
	return Outcome{
		Moved:    o.Moved || other.Moved,
		Locked:   o.Locked || other.Locked,
		Cleared:  o.Cleared + other.Cleared,
		Points:   o.Points + other.Points,
		LevelUp:  o.LevelUp || other.LevelUp,
		GameOver: o.GameOver || other.GameOver,
	}
}

// Session is the complete state of one game: the board, the active piece,
// the upcoming shape and the score counters. Score, level and lines only
// grow during a session. Once terminal, nothing changes.
type Session struct {
	board    Board
	current  Piece
	next     Shape
	score    int
	level    int
	lines    int
	terminal bool
	rng      Rand
	stats    Stats
}

// NewSession starts a game on an empty board at level 1 and spawns the
// first piece.
func NewSession(rng Rand) *Session {
	s := &Session{
		level: 1,
		rng:   rng,
		stats: newStats(),
	}
	s.next = s.drawShape()
	s.spawn()
	return s
}

func (s *Session) drawShape() Shape {
	return Shape(s.rng.Intn(ShapeCount))
}

// spawn promotes the upcoming shape to the active piece and draws a new
// upcoming shape. A spawn that does not fit ends the game; this is the only
// game-over check.
func (s *Session) spawn() bool {
	s.current = Piece{Shape: s.next, Rotation: 0, X: SpawnX, Y: SpawnY}
	s.next = s.drawShape()
	s.stats.recordSpawn()
	if !Fits(s.current, &s.board) {
		s.terminal = true
		return false
	}
	return true
}

// try replaces the active piece with the candidate if it fits.
func (s *Session) try(candidate Piece) bool {
	if s.terminal || !Fits(candidate, &s.board) {
		return false
	}
	s.current = candidate
	return true
}

// MoveLeft shifts the active piece one column left if it fits.
// A blocked move is a silent no-op.
func (s *Session) MoveLeft() bool {
	return s.try(s.current.Moved(-1, 0))
}

// MoveRight shifts the active piece one column right if it fits.
func (s *Session) MoveRight() bool {
	return s.try(s.current.Moved(1, 0))
}

// Rotate turns the active piece clockwise around its bounding box origin.
// No offsets are tried, so rotations against walls or the stack may be
// rejected even when a shifted placement would fit.
func (s *Session) Rotate() bool {
	return s.try(s.current.Rotated())
}

// Fall moves the active piece down one row, or settles it when it cannot
// move: lock, clear lines, score, spawn. Gravity and soft drop both use it.
func (s *Session) Fall() Outcome {
	if s.terminal {
		return Outcome{}
	}
	if s.try(s.current.Moved(0, 1)) {
		return Outcome{Moved: true}
	}
	return s.settle()
}

// SoftDrop is a player-triggered Fall.
func (s *Session) SoftDrop() Outcome {
	return s.Fall()
}

// HardDrop moves the active piece as far down as it fits and settles it,
// as one action.
func (s *Session) HardDrop() Outcome {
	if s.terminal {
		return Outcome{}
	}
	moved := false
	for s.try(s.current.Moved(0, 1)) {
		moved = true
	}
	out := s.settle()
	out.Moved = moved
	return out
}

// settle locks the active piece, clears full rows, updates the score and
// level, and spawns the next piece.
func (s *Session) settle() Outcome {
	Lock(s.current, &s.board)
	cleared := s.board.ClearLines()
	out := s.applyClear(cleared)
	out.Locked = true
	if !s.spawn() {
		out.GameOver = true
	}
	return out
}

// applyClear scores a clear with the level held before this clear, then
// adds the rows and recomputes the level.
func (s *Session) applyClear(cleared int) Outcome {
	if cleared <= 0 {
		return Outcome{}
	}
	points := LinePoints(cleared, s.level)
	s.score += points
	s.lines += cleared
	prev := s.level
	s.level = LevelForLines(s.lines)
	s.stats.recordClear(cleared)
	return Outcome{
		Cleared: cleared,
		Points:  points,
		LevelUp: s.level > prev,
	}
}

// Board returns a copy of the locked cells.
func (s *Session) Board() Board {
	return s.board
}

// Current returns the active piece.
func (s *Session) Current() Piece {
	return s.current
}

// Next returns the upcoming shape shown in the preview.
func (s *Session) Next() Shape {
	return s.next
}

// Score returns the current score. It is frozen once the session is terminal.
func (s *Session) Score() int {
	return s.score
}

// Level returns the current level, starting at 1.
func (s *Session) Level() int {
	return s.level
}

// Lines returns the total number of rows cleared.
func (s *Session) Lines() int {
	return s.lines
}

// Terminal reports whether the game is over.
func (s *Session) Terminal() bool {
	return s.terminal
}

// Stats returns the session's event counters.
func (s *Session) Stats() Stats {
	return s.stats
}
