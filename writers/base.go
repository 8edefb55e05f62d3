// Package writers provides the destination backends of the pipeline.
// Every writer embeds Base, which carries the filter and formatter
// composition every backend shares: all attached filters must accept
// an event before the formatter runs and the side effect happens.
package writers

import (
	"sync"

	"github.com/nickbooties/logfan/core"
	"github.com/nickbooties/logfan/formatters"
)

// defaultFormatter renders events for writers with no formatter set.
var defaultFormatter core.Formatter = formatters.NewText()

// Base holds a writer's filters and formatter. Concrete writers embed
// it and call Accepts and Render from their Write implementation.
type Base struct {
	mu        sync.RWMutex
	filters   []core.Filter
	formatter core.Formatter
}

// AddFilter appends a filter to the writer.
func (b *Base) AddFilter(filter core.Filter) {
	if filter == nil {
		return
	}
	b.mu.Lock()
	b.filters = append(b.filters, filter)
	b.mu.Unlock()
}

// SetFormatter replaces the writer's formatter. Nil restores the
// default text rendering.
func (b *Base) SetFormatter(formatter core.Formatter) {
	b.mu.Lock()
	b.formatter = formatter
	b.mu.Unlock()
}

// Formatter returns the explicitly attached formatter, or nil when
// the writer is using the default rendering.
func (b *Base) Formatter() core.Formatter {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.formatter
}

// Accepts reports whether every attached filter passes the severity.
// A writer with no filters accepts everything.
func (b *Base) Accepts(severity core.Severity) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, f := range b.filters {
		if !f.Accepts(severity) {
			return false
		}
	}
	return true
}

// Render produces the event's representation using the attached
// formatter, or the default text formatter when none is set.
func (b *Base) Render(event *core.LogEvent) (string, error) {
	b.mu.RLock()
	f := b.formatter
	b.mu.RUnlock()
	if f == nil {
		f = defaultFormatter
	}
	return f.Format(event)
}
