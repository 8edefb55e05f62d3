package logfan

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"

	"github.com/nickbooties/logfan/core"
)

// stackTracer is the trace carrier of github.com/pkg/errors values.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// normalize converts heterogeneous log input into the canonical
// event. skip counts the stack frames between normalize and the
// caller whose location a string message should report.
//
// Normalization never fails: missing pieces default to empty rather
// than erroring, and an unusable severity becomes Notice.
func normalize(message any, severity core.Severity, skip int) *core.LogEvent {
	if !severity.Valid() {
		severity = core.Notice
	}

	switch m := message.(type) {
	case string:
		return stringEvent(m, severity, skip+1)
	case error:
		return errorEvent(m, severity)
	case *core.LogEvent:
		return passthroughEvent(*m, severity)
	case core.LogEvent:
		return passthroughEvent(m, severity)
	case map[string]any:
		return mapEvent(m, severity)
	default:
		return stringEvent(stringify(m), severity, skip+1)
	}
}

// stringEvent records a plain message together with the caller's
// location and call stack. skip counts frames above stringEvent to
// exclude from the capture.
func stringEvent(message string, severity core.Severity, skip int) *core.LogEvent {
	event := &core.LogEvent{
		Message:  orPlaceholder(message),
		Severity: severity,
		Context:  captureStack(skip + 1),
	}
	if len(event.Context) > 0 {
		event.File = event.Context[0].File
		event.Line = event.Context[0].Line
	}
	return event
}

// errorEvent records an error value. When the error carries a
// pkg/errors stack trace, the trace becomes the event context and its
// innermost frame the event origin.
func errorEvent(err error, severity core.Severity) *core.LogEvent {
	event := &core.LogEvent{
		Message:  orPlaceholder(err.Error()),
		Severity: severity,
	}

	var tracer stackTracer
	if errors.As(err, &tracer) {
		event.Context = traceFrames(tracer.StackTrace())
		if len(event.Context) > 0 {
			event.File = event.Context[0].File
			event.Line = event.Context[0].Line
		}
	}
	return event
}

// passthroughEvent copies an already-shaped event, defaulting the
// fields the caller left empty. The copy keeps the dispatched event
// independent of the caller's value.
func passthroughEvent(event core.LogEvent, severity core.Severity) *core.LogEvent {
	event.Message = orPlaceholder(event.Message)
	if !event.Severity.Valid() {
		event.Severity = severity
	}
	if event.Context != nil {
		ctx := make([]core.Frame, len(event.Context))
		copy(ctx, event.Context)
		event.Context = ctx
	}
	return &event
}

// mapEvent builds an event from a loosely structured map with
// "message", "number", "file", "line" and "context" keys. Unusable
// values default rather than erroring.
func mapEvent(m map[string]any, severity core.Severity) *core.LogEvent {
	event := &core.LogEvent{Severity: severity}

	if v, ok := m["message"]; ok {
		event.Message = stringify(v)
	}
	event.Message = orPlaceholder(event.Message)

	if v, ok := m["number"]; ok {
		event.Number = stringify(v)
	}
	if v, ok := m["file"]; ok {
		event.File = stringify(v)
	}
	switch v := m["line"].(type) {
	case int:
		event.Line = v
	case int64:
		event.Line = int(v)
	case float64:
		event.Line = int(v)
	}
	switch v := m["context"].(type) {
	case []core.Frame:
		event.Context = make([]core.Frame, len(v))
		copy(event.Context, v)
	case []string:
		for _, s := range v {
			event.Context = append(event.Context, core.Frame{Function: s})
		}
	}
	return event
}

// captureStack walks the caller's stack, innermost frame first,
// skipping the given number of frames above captureStack itself. An
// empty capture yields nil, never an error.
func captureStack(skip int) []core.Frame {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}

	var stack []core.Frame
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		stack = append(stack, core.Frame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more {
			break
		}
	}
	return stack
}

// traceFrames converts a pkg/errors stack trace.
func traceFrames(trace errors.StackTrace) []core.Frame {
	var stack []core.Frame
	for _, f := range trace {
		pc := uintptr(f) - 1
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		file, line := fn.FileLine(pc)
		stack = append(stack, core.Frame{
			Function: fn.Name(),
			File:     file,
			Line:     line,
		})
	}
	return stack
}

func orPlaceholder(message string) string {
	if message == "" {
		return "(no message)"
	}
	return message
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
