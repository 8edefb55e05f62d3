package zapwriter

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nickbooties/logfan/core"
	"github.com/nickbooties/logfan/filters"
	"github.com/nickbooties/logfan/formatters"
)

func observed(t *testing.T) (*Writer, *observer.ObservedLogs) {
	t.Helper()
	obsCore, logs := observer.New(zapcore.DebugLevel)
	return New(zap.New(obsCore)), logs
}

func TestLevelMapping(t *testing.T) {
	tests := []struct {
		severity core.Severity
		want     zapcore.Level
	}{
		{core.Emerg, zapcore.ErrorLevel},
		{core.Alert, zapcore.ErrorLevel},
		{core.Crit, zapcore.ErrorLevel},
		{core.Err, zapcore.ErrorLevel},
		{core.Warning, zapcore.WarnLevel},
		{core.Notice, zapcore.InfoLevel},
		{core.Info, zapcore.InfoLevel},
		{core.Debug, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		w, logs := observed(t)
		if err := w.Write(&core.LogEvent{Message: "m", Severity: tt.severity}); err != nil {
			t.Fatalf("Write(%v): %v", tt.severity, err)
		}
		entries := logs.All()
		if len(entries) != 1 {
			t.Fatalf("severity %v produced %d entries", tt.severity, len(entries))
		}
		if entries[0].Level != tt.want {
			t.Errorf("severity %v mapped to %v, want %v", tt.severity, entries[0].Level, tt.want)
		}
	}
}

func TestEventFieldsForwarded(t *testing.T) {
	w, logs := observed(t)

	err := w.Write(&core.LogEvent{
		Number:   "E9",
		Message:  "boom",
		File:     "x.go",
		Line:     42,
		Severity: core.Err,
		Context:  []core.Frame{{Function: "main.run", File: "x.go", Line: 42}},
	})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	entry := entries[0]
	if entry.Message != "boom" {
		t.Errorf("message = %q", entry.Message)
	}

	fields := entry.ContextMap()
	if fields["severity"] != "ERR" {
		t.Errorf("severity field = %v", fields["severity"])
	}
	if fields["number"] != "E9" || fields["file"] != "x.go" || fields["line"] != int64(42) {
		t.Errorf("fields = %v", fields)
	}
	trace, ok := fields["trace"].([]any)
	if !ok || len(trace) != 1 {
		t.Fatalf("trace field = %v", fields["trace"])
	}
}

func TestFilterApplies(t *testing.T) {
	w, logs := observed(t)
	severe, err := filters.NewPriority(core.Err, core.Le)
	if err != nil {
		t.Fatalf("NewPriority: %v", err)
	}
	w.AddFilter(severe)

	w.Write(&core.LogEvent{Message: "kept", Severity: core.Crit})
	w.Write(&core.LogEvent{Message: "dropped", Severity: core.Info})

	if logs.Len() != 1 {
		t.Fatalf("forwarded %d entries, want 1", logs.Len())
	}
	if logs.All()[0].Message != "kept" {
		t.Errorf("forwarded %q", logs.All()[0].Message)
	}
}

func TestExplicitFormatterBecomesMessage(t *testing.T) {
	w, logs := observed(t)
	w.SetFormatter(formatters.NewText())

	w.Write(&core.LogEvent{Message: "boom", Severity: core.Warning, File: "y.go", Line: 3})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Message != "[WARN] boom at y.go:3" {
		t.Errorf("message = %q", entries[0].Message)
	}
}
