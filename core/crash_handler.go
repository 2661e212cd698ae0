package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// resetTerminal restores the terminal before a crash report is printed.
// Installed once by main after the screen exists; nil means there is
// nothing to restore yet. Keeps this package independent of the
// terminal backend.
var resetTerminal func()

// SetResetHook installs the terminal restore function used on crash.
// Must be called before any goroutine spawned via Go can panic.
func SetResetHook(fn func()) {
	resetTerminal = fn
}

// HandleCrash is the unified panic handler that resets the terminal and
// prints the stack trace, leaving the user's shell usable.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if resetTerminal != nil {
		resetTerminal()
	}

	// Force flush stdout/stderr before printing to stderr
	os.Stdout.Sync()
	os.Stderr.Sync()

	// Use \r\n for raw mode compatibility to avoid zig-zag output
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
