// Package selflog is the diagnostic channel for logfan itself. The
// dispatcher swallows writer delivery failures so that logging can
// never crash the host process; when selflog is enabled those
// failures are reported here instead of vanishing.
//
// Enable it during debugging:
//
//	selflog.Enable(os.Stderr)
//	defer selflog.Disable()
//
// or route messages anywhere with EnableFunc. Setting the
// LOGFAN_SELFLOG environment variable to "stderr", "stdout" or a file
// path enables it at startup.
package selflog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	out  io.Writer
	emit func(string)
)

// Enable activates self-logging to w. The writer is serialized
// internally; it does not need its own locking.
func Enable(w io.Writer) {
	if w == nil {
		return
	}
	mu.Lock()
	out, emit = w, nil
	mu.Unlock()
}

// EnableFunc activates self-logging through a callback.
func EnableFunc(fn func(string)) {
	if fn == nil {
		return
	}
	mu.Lock()
	out, emit = nil, fn
	mu.Unlock()
}

// Disable deactivates self-logging.
func Disable() {
	mu.Lock()
	out, emit = nil, nil
	mu.Unlock()
}

// IsEnabled reports whether diagnostics are currently being captured.
// Check it before building expensive messages.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return out != nil || emit != nil
}

// Printf reports one diagnostic message. The format string should
// lead with the component in square brackets, e.g.
// "[dispatcher] writer failed: %v". No-op while disabled.
func Printf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil && emit == nil {
		return
	}

	line := time.Now().UTC().Format(time.RFC3339) + " " + fmt.Sprintf(format, args...)
	if out != nil {
		fmt.Fprintln(out, line)
		return
	}
	emit(line)
}

func init() {
	switch dest := os.Getenv("LOGFAN_SELFLOG"); dest {
	case "":
	case "stderr":
		Enable(os.Stderr)
	case "stdout":
		Enable(os.Stdout)
	default:
		if f, err := os.OpenFile(dest, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			Enable(f)
		}
	}
}
