package core

import "fmt"

// Comparison selects how a filter relates an event's severity to its
// configured threshold. The zero value is Eq, exact match.
type Comparison int

const (
	// Eq passes events whose severity equals the threshold.
	Eq Comparison = iota
	// Ne passes events whose severity differs from the threshold.
	Ne
	// Lt passes events numerically below the threshold, i.e. more
	// severe than it.
	Lt
	// Le passes events at the threshold or more severe.
	Le
	// Gt passes events numerically above the threshold, i.e. less
	// severe than it.
	Gt
	// Ge passes events at the threshold or less severe.
	Ge
)

// String returns the operator symbol.
func (c Comparison) String() string {
	switch c {
	case Eq:
		return "="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	default:
		return "?"
	}
}

// Valid reports whether c is one of the six defined operators.
func (c Comparison) Valid() bool {
	return c >= Eq && c <= Ge
}

// Compare applies the operator to the numeric severity values. Labels
// never participate in the comparison.
func (c Comparison) Compare(severity, threshold Severity) bool {
	switch c {
	case Eq:
		return severity == threshold
	case Ne:
		return severity != threshold
	case Lt:
		return severity < threshold
	case Le:
		return severity <= threshold
	case Gt:
		return severity > threshold
	case Ge:
		return severity >= threshold
	default:
		return false
	}
}

// ParseComparison parses an operator symbol such as "<=" or "!=".
// An unrecognized symbol is a configuration error and is reported
// immediately rather than at dispatch time.
func ParseComparison(symbol string) (Comparison, error) {
	switch symbol {
	case "=", "==":
		return Eq, nil
	case "!=", "<>":
		return Ne, nil
	case "<":
		return Lt, nil
	case "<=":
		return Le, nil
	case ">":
		return Gt, nil
	case ">=":
		return Ge, nil
	default:
		return Eq, fmt.Errorf("unknown comparison operator %q", symbol)
	}
}
