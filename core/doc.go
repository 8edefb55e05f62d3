// Package core defines the shared types of the logfan pipeline: the
// Severity scale and its comparison operators, the canonical LogEvent
// record, and the Writer, Filter and Formatter capability interfaces
// implemented by the surrounding packages.
package core
