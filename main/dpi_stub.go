//go:build !windows

package main

// enableDPIAwareness is a no-op outside the win32 DPI negotiation model.
func enableDPIAwareness() {}
