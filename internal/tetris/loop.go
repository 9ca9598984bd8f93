package tetris

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// InputSource yields at most one pending action per poll and never blocks.
// core.InputQueue satisfies it.
type InputSource interface {
	Poll() core.Action
}

// Sink receives a snapshot once per tick.
type Sink interface {
	Draw(Snapshot)
}

// LoopConfig holds the timing knobs of the game loop.
type LoopConfig struct {
	BaseInterval   time.Duration // Fall interval at level 1
	LevelScaling   bool          // Shorten the fall interval as the level grows
	Idle           time.Duration // Pause between ticks in Run
	StopOnGameOver bool          // Make Run return when the session ends
}

// DefaultLoopConfig returns the classic timing: 800ms gravity with level
// scaling and a 20ms idle period.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		BaseInterval: DefaultBaseInterval,
		LevelScaling: true,
		Idle:         20 * time.Millisecond,
	}
}

// TickResult reports what happened during one loop iteration.
type TickResult struct {
	Action    core.Action // The action polled this tick
	Outcome   Outcome     // Combined effect of the action and gravity
	Quit      bool        // The player asked to leave
	Restarted bool        // A new session began this tick
	Snapshot  Snapshot
}

// Loop is the single-threaded orchestrator. It exclusively owns the session
// and the gravity timer; nothing else mutates them.
type Loop struct {
	cfg     LoopConfig
	rng     Rand
	clock   Clock
	input   InputSource
	sink    Sink
	session *Session
	gravity *Gravity
}

// NewLoop starts a session and returns a loop ready to tick.
// sink may be nil when the caller reads TickResult.Snapshot instead.
func NewLoop(cfg LoopConfig, rng Rand, clock Clock, input InputSource, sink Sink) *Loop {
	l := &Loop{
		cfg:   cfg,
		rng:   rng,
		clock: clock,
		input: input,
		sink:  sink,
	}
	l.startSession(clock.Now())
	return l
}

func (l *Loop) startSession(now time.Time) {
	l.session = NewSession(l.rng)
	l.gravity = NewGravity(l.cfg.BaseInterval, l.cfg.LevelScaling, now)
}

// Session returns the session currently owned by the loop.
func (l *Loop) Session() *Session {
	return l.session
}

// Gravity returns the loop's fall scheduler.
func (l *Loop) Gravity() *Gravity {
	return l.gravity
}

// Tick runs one iteration: poll one action and apply it, then apply at most
// one gravity step if the fall interval has elapsed, then publish a snapshot.
func (l *Loop) Tick() TickResult {
	now := l.clock.Now()
	action := l.input.Poll()
	res := TickResult{Action: action}

	switch action {
	case core.ActionQuit:
		res.Quit = true
		res.Snapshot = l.snapshot()
		return res
	case core.ActionRestart:
		if l.session.Terminal() {
			l.startSession(now)
			res.Restarted = true
		}
	default:
		res.Outcome = l.apply(action)
	}

	if !l.session.Terminal() && l.gravity.Due(now, l.session.Level()) {
		res.Outcome = res.Outcome.merge(l.session.Fall())
		l.gravity.Reset(now)
	}

	res.Snapshot = l.snapshot()
	if l.sink != nil {
		l.sink.Draw(res.Snapshot)
	}
	return res
}

// apply performs a player action. Rejected moves are expected and return a
// zero Outcome. Drops leave the gravity timer alone; only a gravity step
// restarts it.
func (l *Loop) apply(action core.Action) Outcome {
	s := l.session
	switch action {
	case core.ActionLeft:
		return Outcome{Moved: s.MoveLeft()}
	case core.ActionRight:
		return Outcome{Moved: s.MoveRight()}
	case core.ActionRotate:
		return Outcome{Moved: s.Rotate()}
	case core.ActionSoftDrop:
		return s.SoftDrop()
	case core.ActionHardDrop:
		return s.HardDrop()
	default:
		return Outcome{}
	}
}

func (l *Loop) snapshot() Snapshot {
	snap := l.session.Snapshot()
	snap.Interval = l.gravity.Interval(l.session.Level())
	return snap
}

// Run ticks until the player quits, ctx is done, or (with StopOnGameOver)
// the session ends. Between ticks it idles for cfg.Idle on the loop's clock.
// It returns the last tick's result.
func (l *Loop) Run(ctx context.Context) (TickResult, error) {
	for {
		res := l.Tick()
		if res.Quit {
			return res, nil
		}
		if l.cfg.StopOnGameOver && l.session.Terminal() {
			return res, nil
		}
		if err := l.clock.Sleep(ctx, l.cfg.Idle); err != nil {
			return res, err
		}
	}
}
