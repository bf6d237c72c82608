package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// DebugEnv names the environment variable that turns on developer tracing.
const DebugEnv = "TM_DEBUG"

var (
	debugMu  sync.Mutex
	debugOut io.Writer = os.Stderr
)

// DebugEnabled returns true if debug mode is enabled via TM_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// SetDebugOutput redirects debug tracing and returns the previous writer.
func SetDebugOutput(w io.Writer) io.Writer {
	debugMu.Lock()
	defer debugMu.Unlock()
	prev := debugOut
	debugOut = w
	return prev
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		debugMu.Lock()
		defer debugMu.Unlock()
		fmt.Fprintf(debugOut, format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		debugMu.Lock()
		defer debugMu.Unlock()
		fmt.Fprintln(debugOut, args...)
	}
}
