package writers

import (
	"bytes"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/nickbooties/logfan/core"
	"github.com/nickbooties/logfan/filters"
	"github.com/nickbooties/logfan/formatters"
)

func event(sev core.Severity, msg string) *core.LogEvent {
	return &core.LogEvent{Message: msg, Severity: sev}
}

func TestStreamWritesDefaultRendering(t *testing.T) {
	var buf bytes.Buffer
	w := NewStream(&buf)

	if err := w.Write(event(core.Warning, "low disk")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got, want := buf.String(), "[WARN] low disk\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestFilterRejectionIsSilentSkip(t *testing.T) {
	var buf bytes.Buffer
	w := NewStream(&buf)
	errOnly, err := filters.NewPriority(core.Err, core.Le)
	if err != nil {
		t.Fatalf("NewPriority: %v", err)
	}
	w.AddFilter(errOnly)

	if err := w.Write(event(core.Info, "ignored")); err != nil {
		t.Fatalf("rejected event must not error, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("rejected event produced output %q", buf.String())
	}

	if err := w.Write(event(core.Crit, "kept")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("accepted event missing from output %q", buf.String())
	}
}

func TestAllFiltersMustAccept(t *testing.T) {
	w := NewMemory()
	le, _ := filters.NewPriority(core.Warning, core.Le)
	ne, _ := filters.NewPriority(core.Err, core.Ne)
	w.AddFilter(le)
	w.AddFilter(ne)

	w.Write(event(core.Err, "blocked by second filter"))
	w.Write(event(core.Crit, "passes both"))

	if w.Count() != 1 {
		t.Fatalf("captured %d events, want 1", w.Count())
	}
	if w.Last().Message != "passes both" {
		t.Errorf("captured %q, want the doubly accepted event", w.Last().Message)
	}
}

type failingFormatter struct{}

func (failingFormatter) Format(*core.LogEvent) (string, error) {
	return "", errors.New("render broke")
}

func TestFormatterFailureIsDeliveryFailure(t *testing.T) {
	var buf bytes.Buffer
	w := NewStream(&buf)
	w.SetFormatter(failingFormatter{})

	if err := w.Write(event(core.Err, "boom")); err == nil {
		t.Fatal("expected formatter failure to surface from Write")
	}
	if buf.Len() != 0 {
		t.Errorf("failed format still produced output %q", buf.String())
	}
}

func TestSetFormatterNilRestoresDefault(t *testing.T) {
	var buf bytes.Buffer
	w := NewStream(&buf)
	w.SetFormatter(formatters.NewJSON())
	w.SetFormatter(nil)

	if err := w.Write(event(core.Info, "plain again")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); !strings.HasPrefix(got, "[INFO] ") {
		t.Errorf("output = %q, want default text rendering", got)
	}
}

func TestFileWriterAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	w, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	if err := w.Write(event(core.Notice, "first")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Write(event(core.Err, "second")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), content)
	}
	if lines[0] != "[NOTICE] first" || lines[1] != "[ERR] second" {
		t.Errorf("unexpected file contents:\n%s", content)
	}
}

func TestFileWriterWriteAfterClose(t *testing.T) {
	w, err := NewFile(filepath.Join(t.TempDir(), "app.log"))
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Write(event(core.Err, "late")); err == nil {
		t.Error("expected error writing to a closed file writer")
	}
	// Close is idempotent.
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestMemoryClear(t *testing.T) {
	w := NewMemory()
	w.Write(event(core.Info, "one"))
	w.Write(event(core.Info, "two"))
	if w.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", w.Count())
	}
	w.Clear()
	if w.Count() != 0 {
		t.Errorf("Count() after Clear = %d, want 0", w.Count())
	}
	if w.Last() != nil {
		t.Error("Last() after Clear should be nil")
	}
}

func TestSMTPValidation(t *testing.T) {
	_, err := NewSMTP(SMTPOptions{From: "a@b", To: []string{"c@d"}})
	if err == nil {
		t.Error("expected error for missing server address")
	}
	_, err = NewSMTP(SMTPOptions{Addr: "mail:25", To: []string{"c@d"}})
	if err == nil {
		t.Error("expected error for missing sender")
	}
	_, err = NewSMTP(SMTPOptions{Addr: "mail:25", From: "a@b"})
	if err == nil {
		t.Error("expected error for missing recipients")
	}
}

func TestSMTPSendsRenderedEvent(t *testing.T) {
	w, err := NewSMTP(SMTPOptions{
		Addr:    "mail.internal:25",
		From:    "alerts@example.com",
		To:      []string{"ops@example.com"},
		Subject: "Site error",
	})
	if err != nil {
		t.Fatalf("NewSMTP: %v", err)
	}

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	w.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	if err := w.Write(event(core.Crit, "database unreachable")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if gotAddr != "mail.internal:25" || gotFrom != "alerts@example.com" {
		t.Errorf("sent via %s from %s", gotAddr, gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "ops@example.com" {
		t.Errorf("recipients = %v", gotTo)
	}
	msg := string(gotMsg)
	if !strings.Contains(msg, "Subject: Site error [CRIT]") {
		t.Errorf("subject line missing severity:\n%s", msg)
	}
	if !strings.Contains(msg, "[CRIT] database unreachable") {
		t.Errorf("body missing rendered event:\n%s", msg)
	}
}

func TestSMTPDeliveryErrorSurfaces(t *testing.T) {
	w, err := NewSMTP(SMTPOptions{
		Addr: "mail.internal:25",
		From: "alerts@example.com",
		To:   []string{"ops@example.com"},
	})
	if err != nil {
		t.Fatalf("NewSMTP: %v", err)
	}
	w.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	if err := w.Write(event(core.Emerg, "down")); err == nil {
		t.Error("expected delivery error to surface from Write")
	}
}
