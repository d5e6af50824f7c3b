package hook

// Virtual-key codes shared by the platform listeners. Values follow the
// Windows virtual-key table; the portable listener maps its rawcodes into the
// same set.
const (
	KeyEscape = 0x1B
	KeyLeft   = 0x25
	KeyUp     = 0x26
	KeyRight  = 0x27
	KeyDown   = 0x28
)

// Handlers receives the global input events the picker cares about. Callbacks
// run synchronously on the thread that dispatches the hook and must not
// block; the deliberate per-tick capture work happens elsewhere.
type Handlers struct {
	// OnCommit fires on a left-button press anywhere on screen.
	OnCommit func()
	// OnNudge fires on an arrow key with the cursor displacement to apply.
	OnNudge func(dx, dy int)
	// OnCancel fires on Escape.
	OnCancel func()

	// Step and FastStep are the nudge distances without and with Shift.
	Step     int
	FastStep int
}

// NudgeDelta maps an arrow virtual-key code and a step size to a cursor
// displacement. ok is false for keys that do not nudge.
func NudgeDelta(vk int, step int) (dx, dy int, ok bool) {
	switch vk {
	case KeyLeft:
		return -step, 0, true
	case KeyRight:
		return step, 0, true
	case KeyUp:
		return 0, -step, true
	case KeyDown:
		return 0, step, true
	default:
		return 0, 0, false
	}
}

func stepFor(shift bool, h Handlers) int {
	if shift {
		return h.FastStep
	}
	return h.Step
}
