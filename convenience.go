package logfan

import (
	"sync"

	"github.com/nickbooties/logfan/core"
)

// The default dispatcher backs the package-level functions. It exists
// for the application's outer boundary; code that wants isolation
// should construct its own Dispatcher with New and pass it along.

var (
	defaultOnce       sync.Once
	defaultDispatcher *Dispatcher
)

// Default returns the process-wide dispatcher, creating it on first
// use. It starts with no writers.
func Default() *Dispatcher {
	defaultOnce.Do(func() {
		defaultDispatcher = New()
	})
	return defaultDispatcher
}

// Log dispatches on the default dispatcher.
func Log(message any, severity core.Severity) {
	Default().dispatch(normalize(message, severity, 1))
}

// AddWriter registers a writer on the default dispatcher.
func AddWriter(w core.Writer) {
	Default().AddWriter(w)
}

// AddWriterWithPriority registers a writer with a priority filter on
// the default dispatcher.
func AddWriterWithPriority(w core.Writer, threshold core.Severity, op core.Comparison) error {
	return Default().AddWriterWithPriority(w, threshold, op)
}

// RemoveWriter removes a writer from the default dispatcher.
func RemoveWriter(w core.Writer) {
	Default().RemoveWriter(w)
}

// ClearWriters empties the default dispatcher.
func ClearWriters() {
	Default().ClearWriters()
}

// Writers lists the default dispatcher's writers in registration
// order.
func Writers() []core.Writer {
	return Default().Writers()
}
