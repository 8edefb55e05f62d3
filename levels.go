package logfan

import "github.com/nickbooties/logfan/core"

// Per-severity shorthands for Log. Each accepts the same message
// shapes as Log.

// Emerg logs at EMERG severity.
func (d *Dispatcher) Emerg(message any) {
	d.dispatch(normalize(message, core.Emerg, 1))
}

// Alert logs at ALERT severity.
func (d *Dispatcher) Alert(message any) {
	d.dispatch(normalize(message, core.Alert, 1))
}

// Crit logs at CRIT severity.
func (d *Dispatcher) Crit(message any) {
	d.dispatch(normalize(message, core.Crit, 1))
}

// Err logs at ERR severity.
func (d *Dispatcher) Err(message any) {
	d.dispatch(normalize(message, core.Err, 1))
}

// Warning logs at WARN severity.
func (d *Dispatcher) Warning(message any) {
	d.dispatch(normalize(message, core.Warning, 1))
}

// Notice logs at NOTICE severity, the default.
func (d *Dispatcher) Notice(message any) {
	d.dispatch(normalize(message, core.Notice, 1))
}

// Info logs at INFO severity.
func (d *Dispatcher) Info(message any) {
	d.dispatch(normalize(message, core.Info, 1))
}

// Debug logs at DEBUG severity.
func (d *Dispatcher) Debug(message any) {
	d.dispatch(normalize(message, core.Debug, 1))
}
