package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/takeoff-arcade/internal/config"
	"github.com/vovakirdan/takeoff-arcade/internal/core"
	"github.com/vovakirdan/takeoff-arcade/internal/takeoff"
)

func newTestModel(events *[]takeoff.Event) Model {
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 99}
	return NewModel(config.Default(), rt, Options{
		OnEvent: func(ev takeoff.Event) { *events = append(*events, ev) },
	})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func TestModelStartsGameOnEnter(t *testing.T) {
	var events []takeoff.Event
	m := newTestModel(&events)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Game().Mode() != takeoff.ModePlaying {
		t.Fatalf("mode = %v, want playing", m.Game().Mode())
	}
	if len(events) != 2 || events[1].Kind != takeoff.EventGameStarted {
		t.Fatalf("events = %+v", events)
	}
	if events[1].Aircraft != "Airbus A320" {
		t.Errorf("aircraft = %q, want Airbus A320", events[1].Aircraft)
	}
}

func TestModelEachPressMovesOnce(t *testing.T) {
	var events []takeoff.Event
	m := newTestModel(&events)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	for i := 0; i < 3; i++ {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	if x := m.Game().Player().X; x != 355 {
		t.Errorf("player X = %v, want 355", x)
	}
}

func TestModelTickResolvesTakeoff(t *testing.T) {
	var events []takeoff.Event
	m := newTestModel(&events)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	if m.Game().Mode() != takeoff.ModeTakeoff {
		t.Fatalf("mode = %v, want takeoff", m.Game().Mode())
	}

	next, cmd := m.Update(TickMsg{})
	m = next.(Model)
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.Game().Mode() != takeoff.ModePlaying {
		t.Errorf("mode = %v, want playing after a low takeoff", m.Game().Mode())
	}
	last := events[len(events)-1]
	if last.Kind != takeoff.EventTakeoffAborted {
		t.Errorf("last event = %v, want takeoff_aborted", last.Kind)
	}
}

func TestModelQuit(t *testing.T) {
	var events []takeoff.Event
	m := newTestModel(&events)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsWorld(t *testing.T) {
	var events []takeoff.Event
	m := newTestModel(&events)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	before := m.Game().Player()

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.Game().Player() != before {
		t.Error("resize should not reset the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	var events []takeoff.Event
	m := newTestModel(&events)

	view := m.View()
	if !strings.Contains(view, takeoff.MenuTitle) {
		t.Errorf("view missing menu title:\n%s", view)
	}
	if !strings.Contains(view, "quit") {
		t.Errorf("view missing help footer:\n%s", view)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output missing %q: %q", want, out)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen should emit one newline per row break, got %q", out)
	}
}
