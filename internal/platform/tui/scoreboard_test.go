package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func TestScoreboardRows(t *testing.T) {
	rows := scoreRows([]storage.Entry{
		{Score: 1200, Level: 2, Lines: 14},
		{Score: 40, Level: 1, Lines: 1},
	})

	if len(rows) != 2 {
		t.Fatalf("rows = %d, expected 2", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "1200" || rows[0][2] != "2" || rows[0][3] != "14" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1][0] != "#2" {
		t.Errorf("row 1 rank = %s, expected #2", rows[1][0])
	}
}

func TestScoreboardSwitchesBoards(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore(storage.Entry{GameID: storage.GameTetris, Score: 300, Level: 1, Lines: 3}); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.scores) != 1 {
		t.Fatalf("tetris board has %d scores, expected 1", len(m.scores))
	}
	if !strings.Contains(m.View(), "Games: 1") {
		t.Error("summary should count one game")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.cursor != 1 || len(m.scores) != 0 {
		t.Errorf("after tab: cursor=%d scores=%d, expected autoplay board with none", m.cursor, len(m.scores))
	}
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("empty board should show placeholder")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.cursor != 0 {
		t.Errorf("after shift+tab: cursor=%d, expected 0", m.cursor)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if m.showSidebar {
		t.Error("narrow scoreboard should not show sidebar")
	}
	if !strings.Contains(m.View(), "Games: 0") {
		t.Error("summary should report no games")
	}
}
