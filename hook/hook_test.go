package hook

import "testing"

func TestNudgeDelta(t *testing.T) {
	cases := []struct {
		vk     int
		step   int
		dx, dy int
		ok     bool
	}{
		{KeyRight, 1, 1, 0, true},
		{KeyRight, 5, 5, 0, true},
		{KeyLeft, 1, -1, 0, true},
		{KeyUp, 1, 0, -1, true},
		{KeyDown, 5, 0, 5, true},
		{KeyEscape, 1, 0, 0, false},
		{0x41, 1, 0, 0, false}, // plain letter key passes through
	}

	for _, tc := range cases {
		dx, dy, ok := NudgeDelta(tc.vk, tc.step)
		if dx != tc.dx || dy != tc.dy || ok != tc.ok {
			t.Errorf("NudgeDelta(%#x, %d) = (%d, %d, %v), want (%d, %d, %v)",
				tc.vk, tc.step, dx, dy, ok, tc.dx, tc.dy, tc.ok)
		}
	}
}

func TestStepForShift(t *testing.T) {
	h := Handlers{Step: 1, FastStep: 5}

	if got := stepFor(false, h); got != 1 {
		t.Errorf("stepFor(false) = %d, want 1", got)
	}
	if got := stepFor(true, h); got != 5 {
		t.Errorf("stepFor(true) = %d, want 5", got)
	}
}
