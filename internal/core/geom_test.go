package core

import "testing"

func TestBoxInset(t *testing.T) {
	b := NewBox(10, 20, 40, 30).Inset(5)
	if b.X != 15 || b.Y != 25 || b.W != 30 || b.H != 20 {
		t.Errorf("Inset(5) = %+v", b)
	}

	// Too small to shrink: collapses instead of inverting.
	tiny := NewBox(0, 0, 6, 6).Inset(5)
	if tiny.W != 0 || tiny.H != 0 || tiny.X != 3 || tiny.Y != 3 {
		t.Errorf("tiny Inset(5) = %+v, expected zero-size box at center", tiny)
	}
}

func TestOverlapsInset(t *testing.T) {
	player := NewBox(80, 176, 40, 44)

	tests := []struct {
		name     string
		other    Box
		expected bool
	}{
		{"deep overlap", NewBox(100, 190, 30, 30), true},
		{"raw overlap inside margin", NewBox(112, 190, 30, 30), false},
		{"exactly 10 units of raw overlap", NewBox(110, 190, 30, 30), false},
		{"11 units of raw overlap", NewBox(109, 190, 30, 30), true},
		{"well clear", NewBox(300, 190, 30, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !player.Overlaps(tc.other) && tc.expected {
				t.Fatal("test case expects a hit without raw overlap")
			}
			if got := OverlapsInset(player, tc.other, 5); got != tc.expected {
				t.Errorf("OverlapsInset() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
