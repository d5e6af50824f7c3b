package main

import (
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"color-loupe/clipboard"
	"color-loupe/config"
	"color-loupe/eventloop"
	"color-loupe/logutil"
	"color-loupe/overlay"
)

func main() {
	// Negotiate DPI awareness before creating any windows or querying metrics,
	// otherwise capture coordinates and window placement disagree on scaled
	// monitors.
	enableDPIAwareness()

	// The overlay message loop, its tick timer and the low-level input hooks
	// all live on this one thread.
	runtime.LockOSThread()

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	logutil.Setup(cfg.EnableFileLogging)

	if err := clipboard.Init(); err != nil {
		// Best-effort: picking still works, the user just loses the
		// clipboard output channel.
		log.Printf("clipboard unavailable: %v", err)
	}

	log.Printf("color loupe: radius=%d zoom=%d tick=%v", cfg.Radius, cfg.Zoom, cfg.TickInterval)

	// Ctrl-C from a parent console behaves like Escape.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		overlay.RequestClose()
	}()

	loop := eventloop.New(cfg)
	if err := loop.Run(); err != nil {
		log.Printf("overlay failed: %v", err)
		os.Exit(1)
	}
}
