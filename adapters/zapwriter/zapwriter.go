// Package zapwriter adapts a zap logger into a logfan writer, for
// applications that already route their output through zap.
package zapwriter

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nickbooties/logfan/core"
	"github.com/nickbooties/logfan/writers"
)

// Writer forwards accepted events to a *zap.Logger. Without an
// explicit formatter the event fields map onto zap fields; with one,
// the rendered string becomes the zap message.
type Writer struct {
	writers.Base
	log *zap.Logger
}

// New creates a writer over an existing zap logger.
func New(log *zap.Logger) *Writer {
	return &Writer{log: log}
}

// Write forwards the event.
func (w *Writer) Write(event *core.LogEvent) error {
	if !w.Accepts(event.Severity) {
		return nil
	}

	if f := w.Formatter(); f != nil {
		line, err := f.Format(event)
		if err != nil {
			return err
		}
		w.emit(event.Severity, line, nil)
		return nil
	}

	fields := []zap.Field{zap.Stringer("severity", event.Severity)}
	if event.Number != "" {
		fields = append(fields, zap.String("number", event.Number))
	}
	if event.File != "" {
		fields = append(fields, zap.String("file", event.File), zap.Int("line", event.Line))
	}
	if len(event.Context) > 0 {
		trace := make([]string, len(event.Context))
		for i, frame := range event.Context {
			trace[i] = frame.String()
		}
		fields = append(fields, zap.Strings("trace", trace))
	}
	w.emit(event.Severity, event.Message, fields)
	return nil
}

// Close flushes the underlying logger.
func (w *Writer) Close() error {
	return w.log.Sync()
}

func (w *Writer) emit(severity core.Severity, message string, fields []zap.Field) {
	if ce := w.log.Check(zapLevel(severity), message); ce != nil {
		ce.Write(fields...)
	}
}

// zapLevel maps the syslog-ordered severities onto zap's scale. The
// three levels above ERR all map to zap's Error so that forwarding
// never triggers zap's exit-on-fatal behavior.
func zapLevel(severity core.Severity) zapcore.Level {
	switch severity {
	case core.Emerg, core.Alert, core.Crit, core.Err:
		return zapcore.ErrorLevel
	case core.Warning:
		return zapcore.WarnLevel
	case core.Notice, core.Info:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
