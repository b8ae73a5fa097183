package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// Finalizer restores whatever owns the terminal before a crash report is printed
type Finalizer interface {
	Fini()
}

var crashTerminal atomic.Pointer[Finalizer]

// SetCrashTerminal registers the terminal to restore on crash, nil clears it
func SetCrashTerminal(f Finalizer) {
	if f == nil {
		crashTerminal.Store(nil)
		return
	}
	crashTerminal.Store(&f)
}

// exit is swapped in tests
var exit = os.Exit

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if f := crashTerminal.Swap(nil); f != nil {
		(*f).Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Stderr.Sync()

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
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
