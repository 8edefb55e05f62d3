package filters

import "github.com/nickbooties/logfan/core"

// Composite combines several filters with AND logic.
type Composite struct {
	filters []core.Filter
}

// NewComposite creates a filter that accepts only when every
// sub-filter accepts. With no sub-filters it accepts everything.
func NewComposite(filters ...core.Filter) *Composite {
	return &Composite{filters: filters}
}

// Accepts returns true only if all sub-filters accept the severity.
func (c *Composite) Accepts(severity core.Severity) bool {
	for _, f := range c.filters {
		if !f.Accepts(severity) {
			return false
		}
	}
	return true
}

// Add appends a sub-filter.
func (c *Composite) Add(filter core.Filter) {
	c.filters = append(c.filters, filter)
}

// Not inverts another filter's decision.
type Not struct {
	inner core.Filter
}

// NewNot creates a filter accepting exactly what inner rejects.
func NewNot(inner core.Filter) *Not {
	return &Not{inner: inner}
}

// Accepts returns the inverse of the inner filter's result.
func (n *Not) Accepts(severity core.Severity) bool {
	return !n.inner.Accepts(severity)
}
