package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return NewModel(cfg, config.DefaultTetrisConfig(), store, log.New(io.Discard))
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model
}

func TestModelKeyQueuesAction(t *testing.T) {
	m := newTestModel(t, nil)
	startX := m.loop.Session().Current().X

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.queue.Len() != 1 {
		t.Fatalf("queue length = %d, expected 1", m.queue.Len())
	}

	m = update(t, m, TickMsg(time.Now()))
	if got := m.loop.Session().Current().X; got != startX-1 {
		t.Errorf("piece x = %d, expected %d", got, startX-1)
	}
	if m.queue.Len() != 0 {
		t.Errorf("queue length = %d after tick, expected 0", m.queue.Len())
	}
}

func TestModelQuitClearsQueue(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(Model)
	if m.queue.Len() != 1 {
		t.Fatalf("queue length = %d, expected only the quit action", m.queue.Len())
	}

	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if !m.quitting {
		t.Error("model should be quitting")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, TickMsg(time.Now()))
	session := m.loop.Session()
	piece := session.Current()

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.loop.Session() != session || m.loop.Session().Current() != piece {
		t.Error("resize should not reset the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil)
	view := m.View()

	for _, want := range []string{"Next:", "Score: 0", "Level: 1", "Best: 0", "restart"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	snap := tetris.Snapshot{Terminal: true, Score: 120, FinalScore: 120, Level: 1, Lines: 2}

	for i := 0; i < 3; i++ {
		if !m.scoreSaved {
			m.saveScore(snap)
			m.scoreSaved = true
		}
	}

	scores, err := store.TopScores(storage.GameTetris, 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 120 || scores[0].Lines != 2 {
		t.Errorf("scores = %+v, expected one entry of 120", scores)
	}
	if m.best != 120 {
		t.Errorf("best = %d, expected 120", m.best)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m.saveScore(tetris.Snapshot{Terminal: true})

	if high, _ := store.HighScore(storage.GameTetris); high != 0 {
		t.Errorf("high score = %d, expected nothing saved", high)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 2)
	s.DrawText(0, 0, "Score: 40")
	s.DrawTextColored(0, 1, "[]", core.ColorCyan)

	out := RenderScreen(s)
	if !strings.Contains(out, "Score: 40") || !strings.Contains(out, "[]") {
		t.Errorf("RenderScreen output missing text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}

func TestModelViewTooSmall(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})

	view := m.View()
	if !strings.Contains(view, "Terminal too small") {
		t.Errorf("expected size warning, got %q", view)
	}
	if strings.Contains(view, "Next:") {
		t.Error("game should not be drawn on a tiny screen")
	}
}
