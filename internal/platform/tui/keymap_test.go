package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/takeoff-arcade/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionTakeoff, false},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"w is not bound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionNone, false},
		{"esc is not bound", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.wantQuit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), got, quit, tt.want, tt.wantQuit)
			}
		})
	}
}

func TestHelpBindingsHaveText(t *testing.T) {
	for _, b := range DefaultKeyMap().ShortHelp() {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("binding %v has no help text", b.Keys())
		}
	}
}
