package pixel

import "testing"

func TestRepeating(t *testing.T) {
	tests := []struct {
		d    int
		want bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{23, false},
		{24, true},
		{25, false},
		{27, true},
		{30, true},
		{31, false},
	}
	for _, tt := range tests {
		if got := repeating(tt.d, 24, 3); got != tt.want {
			t.Errorf("repeating(%d) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestKeyBindingsCoverGameKeys(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range keyBindings {
		seen[b.action.String()] = true
	}
	for _, want := range []string{"Up", "Down", "Left", "Right", "Confirm", "Takeoff"} {
		if !seen[want] {
			t.Errorf("no key bound to %s", want)
		}
	}
}
