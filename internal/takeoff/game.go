// Package takeoff implements the Haneda Takeoff game: aircraft selection,
// dodging hazards on the field, and a takeoff attempt scored on elapsed time.
//
// The package is host-agnostic. Hosts translate key presses to core.Action
// values for HandleAction, call Frame once per redraw, and draw the state
// either through Render (terminal cells) or by reading the accessors.
package takeoff

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/takeoff-arcade/internal/config"
	"github.com/vovakirdan/takeoff-arcade/internal/core"
)

// Player is the aircraft flown by the player.
type Player struct {
	X, Y     float64 // Top-left corner
	W, H     float64
	Speed    float64
	Aircraft config.CatalogEntry
	Loaded   bool // Aircraft image was available at game start
}

// Rect returns the player's box in world coordinates.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Center returns the center of the player's box.
func (p Player) Center() core.Point {
	return p.Rect().Center()
}

// Game holds the complete state of one play session.
// It is not safe for concurrent use; each host drives it from one goroutine.
type Game struct {
	cfg    config.Config
	rng    *rand.Rand
	clock  func() time.Time
	assets AssetChecker

	mode     Mode
	selected int
	player   Player
	hazards  []Hazard

	startTime time.Time
	elapsed   int
	score     int
	hit       string // Name of the hazard that ended the game
}

// New creates a game in the menu using cfg and a deterministic RNG seeded with seed.
func New(cfg config.Config, seed int64) *Game {
	return &Game{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		clock:  time.Now,
		assets: NoAssets{},
		mode:   ModeMenu,
	}
}

// SetClock replaces the time source used for the game timer.
func (g *Game) SetClock(clock func() time.Time) {
	if clock != nil {
		g.clock = clock
	}
}

// SetAssets sets the checker used to decide between images and fallback shapes.
func (g *Game) SetAssets(assets AssetChecker) {
	if assets == nil {
		assets = NoAssets{}
	}
	g.assets = assets
}

// HandleAction applies one discrete key press and returns the resulting events.
func (g *Game) HandleAction(a core.Action) []Event {
	switch g.mode {
	case ModeMenu:
		return g.handleMenu(a)
	case ModePlaying:
		return g.handlePlaying(a)
	case ModeGameOver, ModeSuccess:
		if a == core.ActionConfirm {
			return g.returnToMenu()
		}
	}
	// Takeoff ignores input until the next frame resolves the attempt.
	return nil
}

func (g *Game) handleMenu(a core.Action) []Event {
	n := len(g.cfg.Aircraft)
	switch a {
	case core.ActionUp:
		g.selected = (g.selected + n - 1) % n
		return []Event{g.event(EventSelectionChanged)}
	case core.ActionDown:
		g.selected = (g.selected + 1) % n
		return []Event{g.event(EventSelectionChanged)}
	case core.ActionConfirm:
		g.StartGame()
		return []Event{g.event(EventGameStarted)}
	}
	return nil
}

func (g *Game) handlePlaying(a core.Action) []Event {
	switch a {
	case core.ActionLeft:
		g.player.X -= g.player.Speed
	case core.ActionRight:
		g.player.X += g.player.Speed
	case core.ActionUp:
		g.player.Y -= g.player.Speed
	case core.ActionDown:
		g.player.Y += g.player.Speed
	case core.ActionTakeoff:
		g.mode = ModeTakeoff
		return []Event{g.event(EventTakeoffArmed)}
	}
	return nil
}

// StartGame resets the player with the selected aircraft, spawns the hazards
// and starts the timer.
func (g *Game) StartGame() {
	pc := g.cfg.Player
	aircraft := g.cfg.Aircraft[g.selected]
	g.player = Player{
		X:        pc.StartX,
		Y:        pc.StartY,
		W:        pc.Width,
		H:        pc.Height,
		Speed:    pc.Speed,
		Aircraft: aircraft,
		Loaded:   g.assets.Available(aircraft.Image),
	}
	g.hazards = spawnHazards(g.rng, g.cfg.Hazards, HazardCount, g.assets)
	g.startTime = g.clock()
	g.elapsed = 0
	g.score = 0
	g.hit = ""
	g.mode = ModePlaying
}

// Frame advances the game by one redraw. The timer and collision checks only
// run while the aircraft is in flight.
func (g *Game) Frame() []Event {
	if !g.mode.InFlight() {
		return nil
	}

	g.elapsed = int(g.clock().Sub(g.startTime) / time.Second)

	if i := CheckCollision(g.player.Rect(), g.hazards, g.cfg.Hazards.HalfBox); i >= 0 {
		g.mode = ModeGameOver
		g.score = 0
		g.hit = g.hazards[i].Name
		return []Event{g.event(EventCrashed)}
	}

	if g.mode != ModeTakeoff {
		return nil
	}
	if g.player.Y < g.cfg.Takeoff.Altitude {
		g.mode = ModeSuccess
		g.score = CalcScore(g.elapsed, len(g.hazards))
		return []Event{g.event(EventTookOff)}
	}
	g.mode = ModePlaying
	return []Event{g.event(EventTakeoffAborted)}
}

func (g *Game) returnToMenu() []Event {
	g.mode = ModeMenu
	g.selected = 0
	g.hazards = nil
	return []Event{g.event(EventReturnedToMenu)}
}

func (g *Game) event(kind EventKind) Event {
	return Event{
		Kind:     kind,
		Mode:     g.mode,
		Aircraft: g.cfg.Aircraft[g.selected].Name,
		Hazard:   g.hit,
		Elapsed:  g.elapsed,
		Score:    g.score,
	}
}

// Mode returns the current mode.
func (g *Game) Mode() Mode { return g.mode }

// Selected returns the index of the highlighted aircraft.
func (g *Game) Selected() int { return g.selected }

// Player returns a copy of the player state.
func (g *Game) Player() Player { return g.player }

// Hazards returns a copy of the hazards on the field.
func (g *Game) Hazards() []Hazard {
	out := make([]Hazard, len(g.hazards))
	copy(out, g.hazards)
	return out
}

// Elapsed returns whole seconds since the game started, as of the last frame.
func (g *Game) Elapsed() int { return g.elapsed }

// Score returns the score of the finished game, or 0 before the game ends.
func (g *Game) Score() int { return g.score }

// HitHazard returns the name of the hazard that ended the game, if any.
func (g *Game) HitHazard() string { return g.hit }

// Config returns the configuration the game runs with.
func (g *Game) Config() config.Config { return g.cfg }
