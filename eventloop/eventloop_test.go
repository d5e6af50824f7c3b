package eventloop

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"color-loupe/config"
	"color-loupe/emitter"
)

type recordingTarget struct {
	delivered []string
}

func (r *recordingTarget) Deliver(hex string) error {
	r.delivered = append(r.delivered, hex)
	return nil
}

func newTestLoop(t *testing.T) (*Loop, *recordingTarget, *int) {
	t.Helper()

	target := &recordingTarget{}
	closes := 0

	l := New(config.Default())
	l.cursorPos = func() (image.Point, bool) { return image.Pt(100, 100), true }
	l.moveCursor = func(image.Point) bool { return true }
	l.capture = func(center image.Point, side int) (*image.RGBA, error) {
		return image.NewRGBA(image.Rect(0, 0, side, side)), nil
	}
	l.pixelAt = func(image.Point) (color.RGBA, error) {
		return color.RGBA{R: 255, A: 255}, nil
	}
	l.workAreaAt = func(image.Point) image.Rectangle { return image.Rect(0, 0, 1920, 1080) }
	l.targets = []emitter.Target{target}
	l.requestClose = func() { closes++ }

	return l, target, &closes
}

func TestCommitWritesRedPixel(t *testing.T) {
	l, target, closes := newTestLoop(t)

	l.commit()

	if len(target.delivered) != 1 || target.delivered[0] != "#FF0000" {
		t.Fatalf("target got %v, want [#FF0000]", target.delivered)
	}
	if *closes != 1 {
		t.Fatalf("expected shutdown signal after commit, got %d", *closes)
	}
}

func TestCommitHappensAtMostOnce(t *testing.T) {
	l, target, _ := newTestLoop(t)

	// A double click delivers two button-down events before the window
	// closes; only the first may write the clipboard.
	l.commit()
	l.commit()

	if len(target.delivered) != 1 {
		t.Fatalf("target got %d deliveries, want 1", len(target.delivered))
	}
}

func TestCancelLeavesTargetsUntouched(t *testing.T) {
	l, target, closes := newTestLoop(t)

	l.cancel()

	if len(target.delivered) != 0 {
		t.Fatalf("cancel must not deliver, got %v", target.delivered)
	}
	if *closes != 1 {
		t.Fatalf("expected shutdown signal after cancel, got %d", *closes)
	}
}

func TestNudgeMovesCursor(t *testing.T) {
	l, _, _ := newTestLoop(t)

	var moved image.Point
	l.moveCursor = func(p image.Point) bool {
		moved = p
		return true
	}

	l.nudge(1, 0)
	if moved != image.Pt(101, 100) {
		t.Errorf("nudge(1,0) moved cursor to %v, want (101,100)", moved)
	}

	l.nudge(5, 0)
	if moved != image.Pt(105, 100) {
		t.Errorf("nudge(5,0) moved cursor to %v, want (105,100)", moved)
	}
}

func TestTickProducesPlacedFrame(t *testing.T) {
	l, _, _ := newTestLoop(t)

	frame, ok := l.tick()
	if !ok {
		t.Fatal("tick should produce a frame")
	}
	if frame.Image == nil {
		t.Fatal("tick produced a nil frame image")
	}

	// Cursor at (100,100), offset (40,40): placement is unclamped.
	if frame.Pos != image.Pt(140, 140) {
		t.Errorf("frame position %v, want (140,140)", frame.Pos)
	}
}

func TestTickClampsPlacementAtWorkAreaEdge(t *testing.T) {
	l, _, _ := newTestLoop(t)

	work := image.Rect(0, 0, 1920, 1080)
	l.workAreaAt = func(image.Point) image.Rectangle { return work }
	l.cursorPos = func() (image.Point, bool) { return image.Pt(1919, 1079), true }

	frame, ok := l.tick()
	if !ok {
		t.Fatal("tick should produce a frame")
	}

	d := config.Default().Diameter()
	if frame.Pos.X+d > work.Max.X || frame.Pos.Y+d > work.Max.Y {
		t.Errorf("placement %v escapes work area", frame.Pos)
	}
}

func TestTickSkipsFrameWhenCaptureFails(t *testing.T) {
	l, _, _ := newTestLoop(t)
	l.capture = func(image.Point, int) (*image.RGBA, error) {
		return nil, fmt.Errorf("display gone")
	}

	if _, ok := l.tick(); ok {
		t.Fatal("tick should skip the frame when capture fails")
	}
}
