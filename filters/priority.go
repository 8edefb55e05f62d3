// Package filters provides severity filters for attaching to writers.
package filters

import (
	"fmt"

	"github.com/nickbooties/logfan/core"
)

// Priority filters events by comparing their severity against a fixed
// threshold with a configurable operator. It is stateless beyond that
// configuration.
type Priority struct {
	threshold core.Severity
	op        core.Comparison
}

// NewPriority creates a priority filter. The operator and threshold
// are validated here so that a misconfiguration surfaces at
// construction rather than silently dropping events at dispatch time.
func NewPriority(threshold core.Severity, op core.Comparison) (*Priority, error) {
	if !threshold.Valid() {
		return nil, fmt.Errorf("invalid severity threshold %d", int(threshold))
	}
	if !op.Valid() {
		return nil, fmt.Errorf("invalid comparison operator %d", int(op))
	}
	return &Priority{threshold: threshold, op: op}, nil
}

// NewPriorityParsed creates a priority filter from an operator symbol
// such as "<=". Intended for configuration-driven construction.
func NewPriorityParsed(threshold core.Severity, symbol string) (*Priority, error) {
	op, err := core.ParseComparison(symbol)
	if err != nil {
		return nil, err
	}
	return NewPriority(threshold, op)
}

// Accepts reports whether an event of the given severity passes.
func (p *Priority) Accepts(severity core.Severity) bool {
	return p.op.Compare(severity, p.threshold)
}

// Threshold returns the configured threshold severity.
func (p *Priority) Threshold() core.Severity {
	return p.threshold
}

// Comparison returns the configured operator.
func (p *Priority) Comparison() core.Comparison {
	return p.op
}
