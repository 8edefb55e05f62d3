package logfan

import "github.com/nickbooties/logfan/core"

// Option configures a dispatcher at construction.
type Option func(*Dispatcher)

// WithWriter registers a writer on the new dispatcher.
func WithWriter(w core.Writer) Option {
	return func(d *Dispatcher) {
		d.AddWriter(w)
	}
}

// WithErrorHook installs a callback invoked for every writer delivery
// failure. Combined with DeliveryFailures it is the observable side
// of the otherwise silent best-effort dispatch.
func WithErrorHook(hook ErrorHook) Option {
	return func(d *Dispatcher) {
		d.hook = hook
	}
}
