package writers

import "os"

// NewConsole creates a writer emitting to standard error, the usual
// destination for diagnostics.
func NewConsole() *Stream {
	return NewStream(os.Stderr)
}

// NewConsoleStdout creates a writer emitting to standard output.
func NewConsoleStdout() *Stream {
	return NewStream(os.Stdout)
}
