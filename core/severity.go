package core

import (
	"fmt"
	"strings"
)

// Severity classifies the importance of a log event. Lower values are
// more severe; the encoding follows the syslog ordering.
type Severity int

const (
	// Emerg means the system is unusable.
	Emerg Severity = iota

	// Alert means action must be taken immediately.
	Alert

	// Crit is for critical conditions.
	Crit

	// Err is for error conditions.
	Err

	// Warning is for warning conditions.
	Warning

	// Notice is for normal but significant conditions. It is the
	// default severity when a caller does not supply one.
	Notice

	// Info is for informational messages.
	Info

	// Debug is the least severe, most detailed level.
	Debug
)

// String returns the uppercase label of the severity.
func (s Severity) String() string {
	switch s {
	case Emerg:
		return "EMERG"
	case Alert:
		return "ALERT"
	case Crit:
		return "CRIT"
	case Err:
		return "ERR"
	case Warning:
		return "WARN"
	case Notice:
		return "NOTICE"
	case Info:
		return "INFO"
	case Debug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether s is one of the eight defined severities.
func (s Severity) Valid() bool {
	return s >= Emerg && s <= Debug
}

// ParseSeverity parses a severity label (case-insensitive). It accepts
// the common aliases "error", "warning" and "emergency".
func ParseSeverity(text string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "emerg", "emergency":
		return Emerg, nil
	case "alert":
		return Alert, nil
	case "crit", "critical":
		return Crit, nil
	case "err", "error":
		return Err, nil
	case "warn", "warning":
		return Warning, nil
	case "notice":
		return Notice, nil
	case "info":
		return Info, nil
	case "debug":
		return Debug, nil
	default:
		return Notice, fmt.Errorf("unknown severity %q", text)
	}
}
