package formatters

import (
	"strings"
	"time"

	"github.com/nickbooties/logfan/core"
)

// Detail renders an event as a multi-line report including the
// captured call stack. Intended for file and email destinations where
// one event per line is not a requirement.
type Detail struct {
	// Clock supplies the report timestamp. Overridable for tests.
	Clock func() time.Time
}

// NewDetail creates a detail formatter.
func NewDetail() *Detail {
	return &Detail{}
}

// Format renders the full report.
func (d *Detail) Format(event *core.LogEvent) (string, error) {
	clock := d.Clock
	if clock == nil {
		clock = time.Now
	}

	var b strings.Builder
	b.WriteString(event.Severity.String())
	b.WriteString(" at ")
	b.WriteString(clock().Format(time.RFC3339))
	b.WriteByte('\n')

	b.WriteString("Message: ")
	b.WriteString(event.Message)
	b.WriteByte('\n')

	if event.Number != "" {
		b.WriteString("Number: ")
		b.WriteString(event.Number)
		b.WriteByte('\n')
	}
	if origin := event.Origin(); origin != "" {
		b.WriteString("Source: ")
		b.WriteString(origin)
		b.WriteByte('\n')
	}
	if len(event.Context) > 0 {
		b.WriteString("Trace:\n")
		for _, frame := range event.Context {
			b.WriteString("  ")
			b.WriteString(frame.String())
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}
