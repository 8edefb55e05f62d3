package core

// Writer delivers accepted log events to a destination. A writer owns
// an ordered set of filters and at most one formatter; Write applies
// them in that order before performing the output side effect.
//
// Writers are independent of one another. Delivery is best-effort: a
// returned error marks this writer's delivery as failed but has no
// bearing on any other writer.
type Writer interface {
	// Write delivers one event. A filter rejection is a silent skip
	// and returns nil; only formatting and backend failures are
	// reported as errors.
	Write(event *LogEvent) error

	// AddFilter appends a filter. All attached filters must accept an
	// event for it to be delivered; a writer with no filters accepts
	// everything.
	AddFilter(filter Filter)

	// SetFormatter replaces the writer's formatter. A nil formatter
	// restores the default rendering.
	SetFormatter(formatter Formatter)

	// Close releases any resources held by the writer's backend.
	Close() error
}

// Filter decides whether a writer processes an event of the given
// severity. Implementations are pure functions of their configuration
// and the severity.
type Filter interface {
	Accepts(severity Severity) bool
}

// Formatter renders a log event into a writer-specific representation.
// A formatting failure is a delivery failure of the owning writer and
// must be returned, never papered over with an empty string.
type Formatter interface {
	Format(event *LogEvent) (string, error)
}
