package eventloop

import (
	"image"
	"image/color"
	"log"

	"color-loupe/config"
	"color-loupe/cursor"
	"color-loupe/emitter"
	"color-loupe/hook"
	"color-loupe/loupe"
	"color-loupe/overlay"
	"color-loupe/screenshot"
)

// Loop is the single-threaded coordinator. The overlay's timer tick drives
// the capture-compose-present pipeline; the global input hooks drive commit,
// nudge and cancel. Every callback runs on the overlay message-loop thread,
// so the compositor's reused buffers are never touched concurrently.
type Loop struct {
	cfg         *config.Config
	compositor  *loupe.Compositor
	captureSide int
	committed   bool

	// Collaborators are fields so commit and cancel flows can be exercised
	// without a display.
	cursorPos    func() (image.Point, bool)
	moveCursor   func(image.Point) bool
	capture      func(center image.Point, side int) (*image.RGBA, error)
	pixelAt      func(image.Point) (color.RGBA, error)
	workAreaAt   func(image.Point) image.Rectangle
	targets      []emitter.Target
	requestClose func()
}

func New(cfg *config.Config) *Loop {
	return &Loop{
		cfg:          cfg,
		compositor:   loupe.NewCompositor(cfg.Diameter(), cfg.BorderWidth, cfg.MarkerSize),
		captureSide:  loupe.CaptureSide(cfg.Diameter(), cfg.Zoom),
		cursorPos:    cursor.Pos,
		moveCursor:   cursor.Move,
		capture:      screenshot.CaptureSquare,
		pixelAt:      screenshot.PixelAt,
		workAreaAt:   overlay.WorkAreaAt,
		targets:      []emitter.Target{emitter.ClipboardTarget{}, emitter.ConsoleTarget{}},
		requestClose: overlay.RequestClose,
	}
}

// Run installs the global input hooks, then creates the overlay window and
// blocks in its message loop until the window is destroyed. The hooks are
// uninstalled on every exit path.
func (l *Loop) Run() error {
	if err := hook.Install(hook.Handlers{
		OnCommit: l.commit,
		OnNudge:  l.nudge,
		OnCancel: l.cancel,
		Step:     l.cfg.NudgeStep,
		FastStep: l.cfg.NudgeStepFast,
	}); err != nil {
		// The loupe still shows without hooks; the user just cannot commit.
		log.Printf("eventloop: input hooks unavailable: %v", err)
	}
	defer hook.Uninstall()

	return overlay.Run(overlay.Config{
		Size:   l.cfg.Diameter(),
		Tick:   l.cfg.TickInterval,
		OnTick: l.tick,
	})
}

// tick produces the next loupe frame: read the cursor, capture the square
// around it, composite, and clamp the window placement to the work area of
// the monitor the loupe lands on.
func (l *Loop) tick() (overlay.Frame, bool) {
	cur, ok := l.cursorPos()
	if !ok {
		return overlay.Frame{}, false
	}

	src, err := l.capture(cur, l.captureSide)
	if err != nil {
		log.Printf("eventloop: capture failed: %v", err)
		return overlay.Frame{}, false
	}

	frame := l.compositor.Compose(src)
	desired := cur.Add(image.Pt(l.cfg.OffsetX, l.cfg.OffsetY))
	rect := overlay.ClampToWorkArea(desired, l.cfg.Diameter(), l.workAreaAt(desired))

	return overlay.Frame{Image: frame, Pos: rect.Min}, true
}

// commit samples the true screen pixel under the cursor, never the composited
// frame, delivers it to every output target and signals shutdown. Repeated
// clicks before the window closes are ignored so the clipboard is written at
// most once per process lifetime.
func (l *Loop) commit() {
	if l.committed {
		return
	}
	l.committed = true

	var picked color.RGBA
	if cur, ok := l.cursorPos(); ok {
		if px, err := l.pixelAt(cur); err == nil {
			picked = px
		} else {
			log.Printf("eventloop: pixel read failed: %v", err)
		}
	}

	hex := emitter.Emit(picked, l.targets...)
	log.Printf("eventloop: committed %s", hex)
	l.requestClose()
}

func (l *Loop) nudge(dx, dy int) {
	if cur, ok := l.cursorPos(); ok {
		l.moveCursor(cur.Add(image.Pt(dx, dy)))
	}
}

func (l *Loop) cancel() {
	l.requestClose()
}
