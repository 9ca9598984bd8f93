package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Smallest screen that still shows the whole well and the sidebar.
const (
	minScreenW = 46
	minScreenH = 22
)

// Model is the Bubble Tea model for an interactive game.
// Key presses are queued and consumed by the game loop one per tick.
type Model struct {
	loop       *tetris.Loop
	queue      *core.InputQueue
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	snapshot   tetris.Snapshot
	best       int
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model. store may be nil, in which case
// scores are not persisted.
func NewModel(cfg core.RuntimeConfig, game config.TetrisConfig, store *storage.Store, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = game.Loop.TickInterval
	}

	queue := core.NewInputQueue()
	rng := rand.New(rand.NewSource(cfg.Seed))
	loop := tetris.NewLoop(game.LoopConfig(), rng, tetris.SystemClock{}, queue, nil)

	m := Model{
		loop:     loop,
		queue:    queue,
		screen:   core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		store:    store,
		logger:   logger,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		snapshot: loop.Session().Snapshot(),
	}
	m.help.Width = cfg.ScreenW

	if store != nil {
		best, err := store.HighScore(storage.GameTetris)
		if err != nil {
			logger.Warn("could not load high score", "err", err)
		}
		m.best = best
	}

	logger.Info("session started", "seed", cfg.Seed, "tick_rate", cfg.TickRate(), "gravity", game.Gravity.BaseInterval, "scaling", game.Gravity.LevelScaling)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action for a key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		// Pending moves are irrelevant once the player leaves.
		m.queue.Clear()
	}
	m.queue.Push(action)
	return m, nil
}

// handleResize processes window resize events. The game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// gameRows leaves the bottom terminal row for the status and help line.
func gameRows(height int) int {
	return max(1, height-1)
}

// handleTick runs one game loop iteration.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.loop.Tick()
	if res.Quit {
		m.quitting = true
		m.logger.Info("player quit", "score", res.Snapshot.Score, "level", res.Snapshot.Level)
		return m, tea.Quit
	}
	m.snapshot = res.Snapshot

	if res.Restarted {
		m.scoreSaved = false
		m.logger.Info("session restarted")
	}
	if res.Outcome.LevelUp {
		m.logger.Info("level up", "level", res.Snapshot.Level, "lines", res.Snapshot.Lines)
	}
	if res.Outcome.GameOver {
		m.logger.Info("game over",
			"score", res.Snapshot.FinalScore,
			"level", res.Snapshot.Level,
			"lines", res.Snapshot.Lines,
			"pieces", res.Snapshot.Pieces,
		)
	}

	// Save score on game over (once)
	if res.Snapshot.Terminal && !m.scoreSaved {
		m.saveScore(res.Snapshot)
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickInterval)
}

// saveScore persists a final score. Failures are logged and play continues.
func (m *Model) saveScore(s tetris.Snapshot) {
	if s.FinalScore <= 0 || m.store == nil {
		return
	}
	_, err := m.store.SaveScore(storage.Entry{
		GameID: storage.GameTetris,
		Score:  s.FinalScore,
		Level:  s.Level,
		Lines:  s.Lines,
	})
	if err != nil {
		m.logger.Error("could not save score", "err", err)
		return
	}
	m.best = max(m.best, s.FinalScore)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.snapshot.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("tetris_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.screen.Width() < minScreenW || m.screen.Height() < minScreenH {
		m.screen.Clear()
		m.screen.DrawTextCentered(m.screen.Height()/2, fmt.Sprintf("Terminal too small (need %dx%d)", minScreenW, minScreenH+1))
		return RenderScreen(m.screen)
	}

	m.snapshot.Render(m.screen)
	status := statusStyle.Render(fmt.Sprintf("Best: %d  ", max(m.best, m.snapshot.Score)))
	return RenderScreen(m.screen) + "\n" + status + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for an interactive game.
func Run(cfg core.RuntimeConfig, game config.TetrisConfig, store *storage.Store, logger *log.Logger) error {
	model := NewModel(cfg, game, store, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
