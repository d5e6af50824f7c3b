//go:build !windows

package emitter

import "os"

// writeConsole writes to standard output; console attachment is a Windows
// GUI-subsystem concern.
func writeConsole(s string) error {
	_, err := os.Stdout.WriteString(s)
	return err
}
