package tetris

// LinesPerLevel is the number of cleared rows needed to advance one level.
const LinesPerLevel = 10

// LinePoints returns the points for clearing n rows in one lock at the given
// level: 40, 100, 300 or 1200 times the level for 1, 2, 3 and 4+ rows.
func LinePoints(n, level int) int {
	switch {
	case n <= 0:
		return 0
	case n == 1:
		return 40 * level
	case n == 2:
		return 100 * level
	case n == 3:
		return 300 * level
	default:
		return 1200 * level
	}
}

// LevelForLines returns the level reached after clearing the given number
// of rows in total.
func LevelForLines(lines int) int {
	return 1 + lines/LinesPerLevel
}
