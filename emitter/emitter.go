package emitter

import (
	"fmt"
	"image/color"
	"log"

	"color-loupe/clipboard"
)

// Hex formats a color as "#RRGGBB": uppercase hex, two digits per channel,
// zero-padded.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Target delivers a formatted color to one output channel.
type Target interface {
	Deliver(hex string) error
}

// ClipboardTarget replaces the system clipboard contents with the hex string.
type ClipboardTarget struct{}

func (ClipboardTarget) Deliver(hex string) error {
	return clipboard.Write(hex)
}

// ConsoleTarget echoes the hex string plus newline to the parent console.
// When the process has no console attached the write is skipped; a new
// console window is never created.
type ConsoleTarget struct{}

func (ConsoleTarget) Deliver(hex string) error {
	return writeConsole(hex + "\n")
}

// Emit formats c and best-effort delivers it to every target. A failed
// delivery is logged and dropped: no caller has a recovery action, the user
// simply does not see that output channel populated.
func Emit(c color.RGBA, targets ...Target) string {
	hex := Hex(c)
	for _, t := range targets {
		if err := t.Deliver(hex); err != nil {
			log.Printf("emitter: delivery failed: %v", err)
		}
	}
	return hex
}
