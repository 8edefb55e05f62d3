package core

import "fmt"

// Frame is one entry of an event's captured call stack.
type Frame struct {
	// Function is the fully qualified function name, if known.
	Function string

	// File is the source file path.
	File string

	// Line is the line number within File.
	Line int
}

// String renders the frame as "function (file:line)".
func (f Frame) String() string {
	if f.Function == "" {
		return fmt.Sprintf("%s:%d", f.File, f.Line)
	}
	return fmt.Sprintf("%s (%s:%d)", f.Function, f.File, f.Line)
}

// LogEvent is the canonical record of one logged occurrence. It is
// created fresh for every dispatch and shared read-only across all
// registered writers; a writer that needs a transformed event must
// work on the copy its formatter produces, never mutate the event.
type LogEvent struct {
	// Number is an optional caller-assigned error code. Empty when
	// the input carried none.
	Number string

	// Message is the human-readable description. Always populated.
	Message string

	// File is the source file the event originated from, when known.
	File string

	// Line is the line number within File, zero when unknown.
	Line int

	// Context holds the captured call stack or auxiliary trace data,
	// innermost frame first. Nil when nothing was captured.
	Context []Frame

	// Severity classifies the event.
	Severity Severity
}

// Origin returns the "file:line" location of the event, or the empty
// string when no location was captured.
func (e *LogEvent) Origin() string {
	if e.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", e.File, e.Line)
}
