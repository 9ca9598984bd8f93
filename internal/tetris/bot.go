package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// RandomInput is an InputSource that mashes keys. It drives headless runs.
type RandomInput struct {
	rng Rand
}

// NewRandomInput creates a random input source.
func NewRandomInput(rng Rand) *RandomInput {
	return &RandomInput{rng: rng}
}

// botActions is weighted toward doing nothing so gravity gets a say.
var botActions = []core.Action{
	core.ActionNone, core.ActionNone, core.ActionNone, core.ActionNone,
	core.ActionNone, core.ActionNone, core.ActionNone, core.ActionNone,
	core.ActionLeft, core.ActionLeft,
	core.ActionRight, core.ActionRight,
	core.ActionRotate,
	core.ActionSoftDrop,
	core.ActionHardDrop,
}

// Poll returns a random action, never ActionQuit or ActionRestart.
func (r *RandomInput) Poll() core.Action {
	return botActions[r.rng.Intn(len(botActions))]
}
