package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout of the playfield on screen. Each board cell is two characters wide.
const (
	wellX     = 2 // Screen column of board column 0
	wellY     = 1 // Screen row of board row 0
	cellWidth = 2
)

// ControlsHelp is the one-line key legend drawn under the well.
const ControlsHelp = "Controls: ← → = move | ↑ = rotate | ↓ = soft drop | Space = hard drop | Q = quit"

// Render draws the snapshot into the screen buffer: the well, the next-piece
// preview, the stats panel and, once the game is over, the final score box.
func (s Snapshot) Render(dst *core.Screen) {
	dst.Clear()
	s.renderWell(dst)
	s.renderSidebar(dst)
	dst.DrawText(wellX, wellY+Height+2, ControlsHelp)
	if s.Terminal {
		s.renderGameOver(dst)
	}
}

func (s Snapshot) renderWell(dst *core.Screen) {
	right := wellX + Width*cellWidth
	for y := 0; y <= Height+1; y++ {
		dst.Set(wellX-1, wellY+y, '|')
		dst.Set(right, wellY+y, '|')
	}
	dst.DrawHLine(wellX, wellY+Height, Width*cellWidth, '-')

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if s.Cells[y][x] {
				dst.DrawTextColored(wellX+x*cellWidth, wellY+y, "[]", core.ColorGray)
			}
		}
	}
	for _, p := range s.Piece {
		dst.DrawTextColored(wellX+p.X*cellWidth, wellY+p.Y, "[]", s.Shape.Color())
	}
}

func (s Snapshot) renderSidebar(dst *core.Screen) {
	nx := wellX + Width*cellWidth + 4
	ny := wellY

	dst.DrawText(nx, ny, "Next:")
	preview := s.Next.Bitmap(0)
	for ry := 0; ry < BoxSize; ry++ {
		for rx := 0; rx < BoxSize; rx++ {
			if preview.Filled(rx, ry) {
				dst.DrawTextColored(nx+rx*cellWidth, ny+1+ry, "[]", s.Next.Color())
			}
		}
	}

	dst.DrawTextColored(nx, ny+8, fmt.Sprintf("Score: %d", s.Score), core.ColorBrightWhite)
	dst.DrawText(nx, ny+9, fmt.Sprintf("Level: %d", s.Level))
	dst.DrawText(nx, ny+10, fmt.Sprintf("Lines: %d", s.Lines))

	dst.DrawText(nx, ny+12, fmt.Sprintf("Pieces: %d", s.Pieces))
	dst.DrawText(nx, ny+13, fmt.Sprintf("Clears: %d/%d/%d/%d", s.Clears[1], s.Clears[2], s.Clears[3], s.Clears[4]))
	if s.Interval > 0 {
		dst.DrawText(nx, ny+14, fmt.Sprintf("Speed: %.2fs", s.Interval.Seconds()))
	}
}

func (s Snapshot) renderGameOver(dst *core.Screen) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", s.FinalScore),
		"R: restart  Q: quit",
	}
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len(l)+4)
	}
	boxH := len(lines) + 2

	wellCenter := wellX + Width*cellWidth/2
	boxX := core.Clamp(wellCenter-boxW/2, 0, max(0, dst.Width()-boxW))
	boxY := wellY + Height/2 - boxH/2

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	for i, l := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorRed
		}
		dst.DrawTextColored(boxX+(boxW-len(l))/2, boxY+1+i, l, color)
	}
}
