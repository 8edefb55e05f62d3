// Package formatters provides renderings of log events for attaching
// to writers. A writer without an explicit formatter falls back to
// Text with the default layout.
package formatters

import (
	"strings"

	"github.com/nickbooties/logfan/core"
)

// Text renders an event as a single line: severity label, message and,
// when captured, the origin location and error number.
type Text struct{}

// NewText creates the default line formatter.
func NewText() *Text {
	return &Text{}
}

// Format renders the event. It never fails; the error return exists to
// satisfy the Formatter contract.
func (t *Text) Format(event *core.LogEvent) (string, error) {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(event.Severity.String())
	b.WriteString("] ")
	b.WriteString(event.Message)
	if event.Number != "" {
		b.WriteString(" (code ")
		b.WriteString(event.Number)
		b.WriteByte(')')
	}
	if origin := event.Origin(); origin != "" {
		b.WriteString(" at ")
		b.WriteString(origin)
	}
	return b.String(), nil
}
