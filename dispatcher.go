// Package logfan dispatches leveled log events to a set of registered
// writers. Each writer filters, formats and delivers events
// independently; a failing writer never affects its peers and never
// surfaces to the logging caller.
package logfan

import (
	"sync"
	"sync/atomic"

	"github.com/nickbooties/logfan/core"
	"github.com/nickbooties/logfan/filters"
	"github.com/nickbooties/logfan/selflog"
)

// ErrorHook observes a writer's delivery failure. Hooks run inline on
// the logging goroutine and must be fast.
type ErrorHook func(writer core.Writer, err error)

// Dispatcher fans log events out to its registered writers in
// registration order. Construct one with New and pass it where
// logging is needed; the package-level functions use a shared default
// instance for the application's outer boundary.
//
// All methods are safe for concurrent use. Log snapshots the writer
// list at entry, so a writer added or removed mid-dispatch either
// sees the whole event or none of it.
type Dispatcher struct {
	mu       sync.RWMutex
	writers  []core.Writer
	failures atomic.Uint64
	hook     ErrorHook
}

// New creates a dispatcher with no writers.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// AddWriter appends a writer to the dispatch order.
func (d *Dispatcher) AddWriter(w core.Writer) {
	if w == nil {
		return
	}
	d.mu.Lock()
	d.writers = append(d.writers, w)
	d.mu.Unlock()
}

// AddWriterWithPriority attaches a priority filter to the writer and
// then registers it. The filter passes events whose severity compares
// true against threshold under op; use core.Le for the common
// "at least this severe" mode, core.Eq for exact match. An invalid
// threshold or operator is reported here, before the writer is
// registered.
func (d *Dispatcher) AddWriterWithPriority(w core.Writer, threshold core.Severity, op core.Comparison) error {
	f, err := filters.NewPriority(threshold, op)
	if err != nil {
		return err
	}
	w.AddFilter(f)
	d.AddWriter(w)
	return nil
}

// RemoveWriter removes a previously registered writer instance. It is
// a no-op when the writer is not registered; the writer's resources
// are untouched either way.
func (d *Dispatcher) RemoveWriter(w core.Writer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, registered := range d.writers {
		if registered == w {
			d.writers = append(d.writers[:i], d.writers[i+1:]...)
			return
		}
	}
}

// ClearWriters empties the writer collection. Idempotent. Writers are
// not closed; releasing backend resources stays with whoever
// constructed them.
func (d *Dispatcher) ClearWriters() {
	d.mu.Lock()
	d.writers = nil
	d.mu.Unlock()
}

// Writers returns the registered writers in registration order.
func (d *Dispatcher) Writers() []core.Writer {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]core.Writer, len(d.writers))
	copy(out, d.writers)
	return out
}

// Log normalizes message into a LogEvent and offers it to every
// registered writer in registration order. message may be a string,
// an error, a *core.LogEvent, or a map[string]any with event-shaped
// keys; anything else is stringified.
//
// Log never fails and never panics: each writer's error or panic is
// recovered, counted, and reported to selflog and the error hook,
// then dispatch continues with the next writer.
func (d *Dispatcher) Log(message any, severity core.Severity) {
	d.dispatch(normalize(message, severity, 1))
}

func (d *Dispatcher) dispatch(event *core.LogEvent) {
	d.mu.RLock()
	writers := make([]core.Writer, len(d.writers))
	copy(writers, d.writers)
	d.mu.RUnlock()

	for _, w := range writers {
		if err := d.deliver(w, event); err != nil {
			d.failures.Add(1)
			if selflog.IsEnabled() {
				selflog.Printf("[dispatcher] writer %T failed: %v", w, err)
			}
			if d.hook != nil {
				d.hook(w, err)
			}
		}
	}
}

// deliver invokes one writer, converting a panic into an error so a
// misbehaving writer cannot take down the dispatch loop.
func (d *Dispatcher) deliver(w core.Writer, event *core.LogEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errPanic{value: r}
		}
	}()
	return w.Write(event)
}

// DeliveryFailures returns the number of writer deliveries that have
// failed since the dispatcher was created. Failures are otherwise
// invisible to logging callers.
func (d *Dispatcher) DeliveryFailures() uint64 {
	return d.failures.Load()
}

type errPanic struct {
	value any
}

func (e errPanic) Error() string {
	return "writer panicked: " + stringify(e.value)
}
