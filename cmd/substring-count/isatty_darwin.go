//go:build darwin

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// isTerminal reports whether f refers to a terminal
func isTerminal(f *os.File) bool {
	_, err := unix.IoctlGetTermios(int(f.Fd()), unix.TIOCGETA) // #nosec G115 -- file descriptors fit in int
	return err == nil
}
