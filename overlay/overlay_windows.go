//go:build windows

package overlay

import (
	"fmt"
	"image"
	"log"
	"syscall"
	"time"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

const (
	tickTimerID             = 1
	monitorDefaultToNearest = 2
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procMonitorFromPoint = user32.NewProc("MonitorFromPoint")
)

// Window state lives in package globals because the WndProc callback carries
// no user pointer. All access happens on the single message-loop thread.
var (
	overlayHwnd win.HWND
	overlaySize int
	overlayTick func() (Frame, bool)

	memDC   win.HDC
	dib     win.HBITMAP
	dibBits unsafe.Pointer
)

// Run creates the loupe window and pumps its message loop until the window is
// destroyed. The window is layered (per-pixel alpha), topmost, excluded from
// the taskbar and alt-tab, and forwards no input: clicks pass through to
// whatever is visually underneath.
//
// Run must be called from an OS-locked thread; the tick timer and any
// low-level input hooks installed on this thread are serviced by this loop.
func Run(cfg Config) error {
	overlaySize = cfg.Size
	overlayTick = cfg.OnTick

	if !createBackBuffer(cfg.Size) {
		return ErrCreateWindow
	}
	defer releaseBackBuffer()

	classNameStr := fmt.Sprintf("ColorLoupeOverlay_%d", time.Now().UnixNano())
	className := syscall.StringToUTF16Ptr(classNameStr)
	wndClass := win.WNDCLASSEX{
		CbSize:        uint32(unsafe.Sizeof(win.WNDCLASSEX{})),
		LpfnWndProc:   syscall.NewCallback(overlayWndProc),
		HInstance:     win.GetModuleHandle(nil),
		HCursor:       win.LoadCursor(0, win.MAKEINTRESOURCE(win.IDC_ARROW)),
		LpszClassName: className,
	}
	if win.RegisterClassEx(&wndClass) == 0 {
		return ErrCreateWindow
	}
	defer win.UnregisterClass(className)

	overlayHwnd = win.CreateWindowEx(
		win.WS_EX_LAYERED|win.WS_EX_TOPMOST|win.WS_EX_TOOLWINDOW|win.WS_EX_TRANSPARENT,
		className,
		syscall.StringToUTF16Ptr(""),
		win.WS_POPUP,
		0, 0, int32(cfg.Size), int32(cfg.Size),
		0, 0, win.GetModuleHandle(nil), nil,
	)
	if overlayHwnd == 0 {
		return ErrCreateWindow
	}
	defer func() { overlayHwnd = 0 }()

	win.ShowWindow(overlayHwnd, win.SW_SHOW)
	win.UpdateWindow(overlayHwnd)

	tickMs := uint32(cfg.Tick.Milliseconds())
	if tickMs == 0 {
		tickMs = 16
	}
	if win.SetTimer(overlayHwnd, tickTimerID, tickMs, 0) == 0 {
		log.Printf("overlay: failed to start tick timer")
	}

	var msg win.MSG
	for {
		ret := win.GetMessage(&msg, 0, 0, 0)
		if ret == 0 { // WM_QUIT
			break
		}
		if ret == -1 {
			log.Printf("overlay: GetMessage error")
			break
		}
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}

	return nil
}

// RequestClose asks the overlay window to close from any shutdown path. Safe
// to call from hook callbacks and from other goroutines; the close is
// processed by the message loop at its next iteration.
func RequestClose() {
	if overlayHwnd != 0 {
		win.PostMessage(overlayHwnd, win.WM_CLOSE, 0, 0)
	}
}

// WorkAreaAt returns the work area of the monitor nearest to p, falling back
// to the primary screen bounds when monitor info is unavailable.
func WorkAreaAt(p image.Point) image.Rectangle {
	pt := uintptr(uint32(int32(p.X))) | uintptr(uint32(int32(p.Y)))<<32
	mon, _, _ := procMonitorFromPoint.Call(pt, monitorDefaultToNearest)
	if mon != 0 {
		var mi win.MONITORINFO
		mi.CbSize = uint32(unsafe.Sizeof(mi))
		if win.GetMonitorInfo(win.HMONITOR(mon), &mi) {
			return image.Rect(
				int(mi.RcWork.Left), int(mi.RcWork.Top),
				int(mi.RcWork.Right), int(mi.RcWork.Bottom),
			)
		}
	}
	return image.Rect(0, 0,
		int(win.GetSystemMetrics(win.SM_CXSCREEN)),
		int(win.GetSystemMetrics(win.SM_CYSCREEN)),
	)
}

func overlayWndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	switch msg {
	case win.WM_TIMER:
		if overlayTick != nil {
			if frame, ok := overlayTick(); ok {
				present(frame)
			}
		}
		return 0
	case win.WM_DESTROY:
		win.KillTimer(hwnd, tickTimerID)
		win.PostQuitMessage(0)
		return 0
	}
	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}

// present copies the frame into the DIB back buffer and hands it to the
// compositor in one atomic update, positioning the window at the same time.
func present(f Frame) {
	if f.Image == nil || overlayHwnd == 0 {
		return
	}
	copyToDIB(f.Image)

	size := win.SIZE{CX: int32(overlaySize), CY: int32(overlaySize)}
	srcPt := win.POINT{}
	dstPt := win.POINT{X: int32(f.Pos.X), Y: int32(f.Pos.Y)}
	blend := win.BLENDFUNCTION{
		BlendOp:             win.AC_SRC_OVER,
		SourceConstantAlpha: 255,
		AlphaFormat:         win.AC_SRC_ALPHA,
	}

	screen := win.GetDC(0)
	win.UpdateLayeredWindow(overlayHwnd, screen, &dstPt, &size, memDC, &srcPt, 0, &blend, win.ULW_ALPHA)
	win.ReleaseDC(0, screen)
}

// copyToDIB converts the RGBA frame to the BGRA layout the DIB expects. The
// frame's alpha is either 0 or 255 with transparent pixels zeroed, so the
// data is already premultiplied as UpdateLayeredWindow requires.
func copyToDIB(img *image.RGBA) {
	bits := unsafe.Slice((*byte)(dibBits), overlaySize*overlaySize*4)
	b := img.Bounds()
	h := min(b.Dy(), overlaySize)
	w := min(b.Dx(), overlaySize)

	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride:]
		dst := bits[y*overlaySize*4:]
		for x := 0; x < w; x++ {
			si := x * 4
			dst[si] = src[si+2]   // B
			dst[si+1] = src[si+1] // G
			dst[si+2] = src[si]   // R
			dst[si+3] = src[si+3] // A
		}
	}
}

func createBackBuffer(size int) bool {
	screen := win.GetDC(0)
	defer win.ReleaseDC(0, screen)

	memDC = win.CreateCompatibleDC(screen)
	if memDC == 0 {
		return false
	}

	bitmapInfo := win.BITMAPINFO{
		BmiHeader: win.BITMAPINFOHEADER{
			BiSize:        uint32(unsafe.Sizeof(win.BITMAPINFOHEADER{})),
			BiWidth:       int32(size),
			BiHeight:      -int32(size), // negative for top-down
			BiPlanes:      1,
			BiBitCount:    32,
			BiCompression: win.BI_RGB,
		},
	}
	dib = win.CreateDIBSection(memDC, &bitmapInfo.BmiHeader, win.DIB_RGB_COLORS, &dibBits, 0, 0)
	if dib == 0 {
		win.DeleteDC(memDC)
		memDC = 0
		return false
	}
	win.SelectObject(memDC, win.HGDIOBJ(dib))
	return true
}

func releaseBackBuffer() {
	if dib != 0 {
		win.DeleteObject(win.HGDIOBJ(dib))
		dib = 0
		dibBits = nil
	}
	if memDC != 0 {
		win.DeleteDC(memDC)
		memDC = 0
	}
}
