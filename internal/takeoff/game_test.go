package takeoff

import (
	"testing"
	"time"

	"github.com/vovakirdan/takeoff-arcade/internal/config"
	"github.com/vovakirdan/takeoff-arcade/internal/core"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestGame(seed int64) (*Game, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	g := New(config.Default(), seed)
	g.SetClock(clock.Now)
	return g, clock
}

func press(g *Game, a core.Action, n int) {
	for i := 0; i < n; i++ {
		g.HandleAction(a)
	}
}

func TestMenuSelectionWraps(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		want    int
	}{
		{"up from first wraps to last", []core.Action{core.ActionUp}, 2},
		{"down from last wraps to first", []core.Action{core.ActionDown, core.ActionDown, core.ActionDown}, 0},
		{"down once", []core.Action{core.ActionDown}, 1},
		{"up then down", []core.Action{core.ActionUp, core.ActionDown}, 0},
		{"other keys ignored", []core.Action{core.ActionLeft, core.ActionRight, core.ActionTakeoff}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(1)
			for _, a := range tt.actions {
				g.HandleAction(a)
			}
			if g.Selected() != tt.want {
				t.Errorf("Selected() = %d, want %d", g.Selected(), tt.want)
			}
			if g.Mode() != ModeMenu {
				t.Errorf("Mode() = %v, want menu", g.Mode())
			}
		})
	}
}

func TestStartGame(t *testing.T) {
	g, _ := newTestGame(42)
	g.HandleAction(core.ActionDown)
	events := g.HandleAction(core.ActionConfirm)

	if len(events) != 1 || events[0].Kind != EventGameStarted {
		t.Fatalf("events = %+v, want one game_started", events)
	}
	if events[0].Aircraft != "Airbus A320" {
		t.Errorf("event aircraft = %q, want Airbus A320", events[0].Aircraft)
	}
	if g.Mode() != ModePlaying {
		t.Errorf("Mode() = %v, want playing", g.Mode())
	}

	p := g.Player()
	if p.X != 370 || p.Y != 500 {
		t.Errorf("player at (%v, %v), want (370, 500)", p.X, p.Y)
	}
	if p.W != 60 || p.H != 30 || p.Speed != 5 {
		t.Errorf("player size %vx%v speed %v, want 60x30 speed 5", p.W, p.H, p.Speed)
	}
	if p.Aircraft.Name != "Airbus A320" {
		t.Errorf("aircraft = %q, want Airbus A320", p.Aircraft.Name)
	}
	if len(g.Hazards()) != HazardCount {
		t.Errorf("len(Hazards()) = %d, want %d", len(g.Hazards()), HazardCount)
	}
}

func TestHazardsWithinBounds(t *testing.T) {
	names := map[string]bool{}
	for _, e := range config.Default().Hazards.Catalog {
		names[e.Name] = true
	}

	for seed := int64(0); seed < 200; seed++ {
		g, _ := newTestGame(seed)
		g.StartGame()
		hazards := g.Hazards()
		if len(hazards) != 3 {
			t.Fatalf("seed %d: %d hazards, want 3", seed, len(hazards))
		}
		for _, h := range hazards {
			if h.Pos.X < 100 || h.Pos.X > 700 || h.Pos.Y < 150 || h.Pos.Y > 450 {
				t.Errorf("seed %d: hazard %s at (%v, %v) out of bounds", seed, h.Name, h.Pos.X, h.Pos.Y)
			}
			if !names[h.Name] {
				t.Errorf("seed %d: hazard %q not in catalog", seed, h.Name)
			}
		}
	}
}

func TestSameSeedSameHazards(t *testing.T) {
	g1, _ := newTestGame(7)
	g2, _ := newTestGame(7)
	g1.StartGame()
	g2.StartGame()

	h1, h2 := g1.Hazards(), g2.Hazards()
	for i := range h1 {
		if h1[i] != h2[i] {
			t.Errorf("hazard %d differs: %+v vs %+v", i, h1[i], h2[i])
		}
	}
}

func TestMovement(t *testing.T) {
	tests := []struct {
		action core.Action
		dx, dy float64
	}{
		{core.ActionLeft, -5, 0},
		{core.ActionRight, 5, 0},
		{core.ActionUp, 0, -5},
		{core.ActionDown, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			g, _ := newTestGame(1)
			g.StartGame()
			g.HandleAction(tt.action)
			p := g.Player()
			if p.X != 370+tt.dx || p.Y != 500+tt.dy {
				t.Errorf("player at (%v, %v), want (%v, %v)", p.X, p.Y, 370+tt.dx, 500+tt.dy)
			}
		})
	}
}

func TestMovementIsNotClamped(t *testing.T) {
	g, _ := newTestGame(1)
	g.StartGame()
	press(g, core.ActionLeft, 100)
	if p := g.Player(); p.X != -130 {
		t.Errorf("player X = %v, want -130", p.X)
	}
}

func TestEndToEndTakeoff(t *testing.T) {
	g, clock := newTestGame(3)
	g.HandleAction(core.ActionConfirm)

	// 81 presses take the player from 500 to 95. Frames are not run while
	// moving, so passing through hazards does not end the game.
	press(g, core.ActionUp, 81)
	if p := g.Player(); p.Y != 95 {
		t.Fatalf("player Y = %v, want 95", p.Y)
	}

	clock.Advance(3*time.Second + 400*time.Millisecond)
	events := g.HandleAction(core.ActionTakeoff)
	if len(events) != 1 || events[0].Kind != EventTakeoffArmed {
		t.Fatalf("events = %+v, want one takeoff_armed", events)
	}
	if g.Mode() != ModeTakeoff {
		t.Fatalf("Mode() = %v, want takeoff", g.Mode())
	}

	events = g.Frame()
	if len(events) != 1 || events[0].Kind != EventTookOff {
		t.Fatalf("events = %+v, want one took_off", events)
	}
	if g.Mode() != ModeSuccess {
		t.Errorf("Mode() = %v, want success", g.Mode())
	}
	if g.Elapsed() != 3 {
		t.Errorf("Elapsed() = %d, want 3", g.Elapsed())
	}
	if g.Score() != CalcScore(3, 3) || g.Score() != 1300 {
		t.Errorf("Score() = %d, want 1300", g.Score())
	}
	if events[0].Score != 1300 {
		t.Errorf("event score = %d, want 1300", events[0].Score)
	}
}

func TestTakeoffBelowThresholdReverts(t *testing.T) {
	g, _ := newTestGame(3)
	g.StartGame()
	g.HandleAction(core.ActionTakeoff)

	// Input is ignored while the attempt is pending.
	g.HandleAction(core.ActionUp)
	if p := g.Player(); p.Y != 500 {
		t.Errorf("player moved during takeoff: Y = %v", p.Y)
	}

	events := g.Frame()
	if len(events) != 1 || events[0].Kind != EventTakeoffAborted {
		t.Fatalf("events = %+v, want one takeoff_aborted", events)
	}
	if g.Mode() != ModePlaying {
		t.Errorf("Mode() = %v, want playing", g.Mode())
	}

	g.HandleAction(core.ActionUp)
	if p := g.Player(); p.Y != 495 {
		t.Errorf("player Y = %v, want 495", p.Y)
	}
}

func TestTakeoffAtThresholdFails(t *testing.T) {
	g, _ := newTestGame(3)
	g.StartGame()
	press(g, core.ActionUp, 80) // Y == 100, not above the threshold
	g.HandleAction(core.ActionTakeoff)
	g.Frame()
	if g.Mode() != ModePlaying {
		t.Errorf("Mode() = %v, want playing", g.Mode())
	}
}

func TestCrashRecordsHazard(t *testing.T) {
	g, clock := newTestGame(5)
	g.StartGame()
	clock.Advance(2 * time.Second)

	// Put the player's center 10 units from the second hazard and move the others away.
	target := g.hazards[1]
	g.hazards[0].Pos = core.Point{X: -1000, Y: -1000}
	g.hazards[2].Pos = core.Point{X: -1000, Y: -1000}
	g.player.X = target.Pos.X - g.player.W/2 + 10
	g.player.Y = target.Pos.Y - g.player.H/2

	events := g.Frame()
	if len(events) != 1 || events[0].Kind != EventCrashed {
		t.Fatalf("events = %+v, want one crashed", events)
	}
	if events[0].Hazard != target.Name {
		t.Errorf("event hazard = %q, want %q", events[0].Hazard, target.Name)
	}
	if g.Mode() != ModeGameOver {
		t.Errorf("Mode() = %v, want gameover", g.Mode())
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, want 0", g.Score())
	}
	if g.HitHazard() != target.Name {
		t.Errorf("HitHazard() = %q, want %q", g.HitHazard(), target.Name)
	}
	if g.Elapsed() != 2 {
		t.Errorf("Elapsed() = %d, want 2", g.Elapsed())
	}
}

func TestCrashWinsOverTakeoff(t *testing.T) {
	g, _ := newTestGame(5)
	g.StartGame()
	g.hazards[0].Pos = core.Point{X: 400, Y: 80}
	g.player.X = 370
	g.player.Y = 65
	g.HandleAction(core.ActionTakeoff)

	g.Frame()
	if g.Mode() != ModeGameOver {
		t.Errorf("Mode() = %v, want gameover", g.Mode())
	}
}

func TestReturnToMenu(t *testing.T) {
	for _, end := range []Mode{ModeGameOver, ModeSuccess} {
		t.Run(end.String(), func(t *testing.T) {
			g, _ := newTestGame(1)
			g.HandleAction(core.ActionDown)
			g.HandleAction(core.ActionDown)
			g.StartGame()
			g.mode = end

			if events := g.HandleAction(core.ActionUp); events != nil {
				t.Errorf("Up on end screen returned %+v", events)
			}
			events := g.HandleAction(core.ActionConfirm)
			if len(events) != 1 || events[0].Kind != EventReturnedToMenu {
				t.Fatalf("events = %+v, want one returned_to_menu", events)
			}
			if g.Mode() != ModeMenu {
				t.Errorf("Mode() = %v, want menu", g.Mode())
			}
			if g.Selected() != 0 {
				t.Errorf("Selected() = %d, want 0", g.Selected())
			}
			if len(g.Hazards()) != 0 {
				t.Errorf("hazards not cleared: %d", len(g.Hazards()))
			}
		})
	}
}

func TestFrameOutsideFlightIsNoop(t *testing.T) {
	g, clock := newTestGame(1)
	if events := g.Frame(); events != nil {
		t.Errorf("Frame() in menu = %+v", events)
	}

	g.StartGame()
	g.mode = ModeSuccess
	g.score = 1500
	clock.Advance(10 * time.Second)
	g.Frame()
	if g.Elapsed() != 0 || g.Score() != 1500 {
		t.Errorf("end screen changed: elapsed %d score %d", g.Elapsed(), g.Score())
	}
}

func TestAssetsDecideLoaded(t *testing.T) {
	g, _ := newTestGame(1)
	g.SetAssets(AssetFunc(func(ref string) bool {
		return ref == "resources/boeing_737.png"
	}))
	g.StartGame()

	if !g.Player().Loaded {
		t.Error("aircraft image should be loaded")
	}
	for _, h := range g.Hazards() {
		if h.Loaded {
			t.Errorf("hazard %s should use the fallback", h.Name)
		}
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeMenu, "menu"},
		{ModePlaying, "playing"},
		{ModeTakeoff, "takeoff"},
		{ModeGameOver, "gameover"},
		{ModeSuccess, "success"},
		{Mode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
