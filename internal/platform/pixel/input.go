package pixel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/takeoff-arcade/internal/core"
)

// Held keys repeat like keyboard auto-repeat: once on press, then every
// repeatInterval ticks after repeatDelay.
const (
	repeatDelay    = 24
	repeatInterval = 3
)

// keyBinding maps a physical key to a game action.
type keyBinding struct {
	key     ebiten.Key
	action  core.Action
	repeats bool
}

var keyBindings = []keyBinding{
	{ebiten.KeyArrowUp, core.ActionUp, true},
	{ebiten.KeyArrowDown, core.ActionDown, true},
	{ebiten.KeyArrowLeft, core.ActionLeft, true},
	{ebiten.KeyArrowRight, core.ActionRight, true},
	{ebiten.KeyEnter, core.ActionConfirm, false},
	{ebiten.KeySpace, core.ActionTakeoff, false},
}

// pressedActions returns the actions triggered this tick, in binding order.
func pressedActions() []core.Action {
	var actions []core.Action
	for _, b := range keyBindings {
		if b.repeats {
			if repeating(inpututil.KeyPressDuration(b.key), repeatDelay, repeatInterval) {
				actions = append(actions, b.action)
			}
			continue
		}
		if inpututil.IsKeyJustPressed(b.key) {
			actions = append(actions, b.action)
		}
	}
	return actions
}

// repeating reports whether a key held for d ticks fires this tick.
func repeating(d, delay, interval int) bool {
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}
