package emitter

import (
	"errors"
	"image/color"
	"testing"
)

func TestHexFormat(t *testing.T) {
	cases := []struct {
		c    color.RGBA
		want string
	}{
		{color.RGBA{R: 0, G: 0, B: 0}, "#000000"},
		{color.RGBA{R: 255, G: 165, B: 0}, "#FFA500"},
		{color.RGBA{R: 255, G: 255, B: 255}, "#FFFFFF"},
		{color.RGBA{R: 255, G: 0, B: 0}, "#FF0000"},
		{color.RGBA{R: 1, G: 2, B: 3}, "#010203"},
		{color.RGBA{R: 0x0A, G: 0xB0, B: 0x0C}, "#0AB00C"},
	}

	for _, tc := range cases {
		got := Hex(tc.c)
		if got != tc.want {
			t.Errorf("Hex(%+v) = %q, want %q", tc.c, got, tc.want)
		}
		if len(got) != 7 {
			t.Errorf("Hex(%+v) = %q, want exactly 7 characters", tc.c, got)
		}
	}
}

type recordingTarget struct {
	delivered []string
	err       error
}

func (r *recordingTarget) Deliver(hex string) error {
	r.delivered = append(r.delivered, hex)
	return r.err
}

func TestEmitDeliversToEveryTarget(t *testing.T) {
	a := &recordingTarget{}
	b := &recordingTarget{}

	got := Emit(color.RGBA{R: 255, G: 0, B: 0, A: 255}, a, b)

	if got != "#FF0000" {
		t.Errorf("Emit returned %q, want #FF0000", got)
	}
	if len(a.delivered) != 1 || a.delivered[0] != "#FF0000" {
		t.Errorf("first target got %v", a.delivered)
	}
	if len(b.delivered) != 1 || b.delivered[0] != "#FF0000" {
		t.Errorf("second target got %v", b.delivered)
	}
}

func TestEmitIgnoresDeliveryFailure(t *testing.T) {
	failing := &recordingTarget{err: errors.New("clipboard busy")}
	ok := &recordingTarget{}

	Emit(color.RGBA{R: 1, G: 2, B: 3, A: 255}, failing, ok)

	// A failed target never blocks the remaining channels.
	if len(ok.delivered) != 1 || ok.delivered[0] != "#010203" {
		t.Errorf("second target got %v, want [#010203]", ok.delivered)
	}
}
