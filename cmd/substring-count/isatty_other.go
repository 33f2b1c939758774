//go:build !linux && !darwin

package main

import "os"

// isTerminal always reports false; prompts are only shown on linux and darwin
func isTerminal(_ *os.File) bool {
	return false
}
