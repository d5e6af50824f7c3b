//go:build !windows

package hook

import (
	"log"
	"sync"

	gohook "github.com/robotn/gohook"
)

// The portable listener observes global input through gohook. Unlike the
// win32 low-level hooks it cannot swallow events, so the click that commits a
// color still reaches the application underneath, and events arrive from the
// gohook goroutine rather than the message loop.

const leftButton = 1

// rawcodesFor maps a virtual-key code to the platform rawcodes gohook
// reports: the Windows VK value itself plus the X11 keysym.
func rawcodesFor(vk int) []uint16 {
	switch vk {
	case KeyEscape:
		return []uint16{27, 65307}
	case KeyLeft:
		return []uint16{37, 65361}
	case KeyUp:
		return []uint16{38, 65362}
	case KeyRight:
		return []uint16{39, 65363}
	case KeyDown:
		return []uint16{40, 65364}
	default:
		return nil
	}
}

var (
	installOnce   sync.Once
	uninstallOnce sync.Once
)

// Install starts the global gohook listener and forwards the picker's events
// to the handlers. Events are delivered from the gohook goroutine.
func Install(h Handlers) error {
	installOnce.Do(func() {
		go listen(h)
	})
	return nil
}

// Uninstall stops the global listener. Idempotent.
func Uninstall() {
	uninstallOnce.Do(func() {
		gohook.End()
	})
}

func listen(h Handlers) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("hook: panic in listener goroutine: %v", r)
		}
	}()

	evChan := gohook.Start()
	if evChan == nil {
		log.Printf("hook: gohook.Start() returned nil channel")
		return
	}

	shift := false
	shiftCodes := map[uint16]bool{160: true, 161: true, 65505: true, 65506: true}

	for ev := range evChan {
		switch ev.Kind {
		case gohook.MouseDown:
			if ev.Button == leftButton && h.OnCommit != nil {
				h.OnCommit()
			}
		case gohook.KeyDown:
			if shiftCodes[ev.Rawcode] {
				shift = true
				continue
			}
			dispatchKey(h, ev.Rawcode, shift)
		case gohook.KeyUp:
			if shiftCodes[ev.Rawcode] {
				shift = false
			}
		}
	}
}

func dispatchKey(h Handlers, rawcode uint16, shift bool) {
	vk := vkFor(rawcode)
	if vk == 0 {
		return
	}
	if vk == KeyEscape {
		if h.OnCancel != nil {
			h.OnCancel()
		}
		return
	}
	if dx, dy, ok := NudgeDelta(vk, stepFor(shift, h)); ok && h.OnNudge != nil {
		h.OnNudge(dx, dy)
	}
}

func vkFor(rawcode uint16) int {
	for _, vk := range []int{KeyEscape, KeyLeft, KeyUp, KeyRight, KeyDown} {
		for _, rc := range rawcodesFor(vk) {
			if rc == rawcode {
				return vk
			}
		}
	}
	return 0
}
