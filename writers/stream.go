package writers

import (
	"io"
	"sync"

	"github.com/pkg/errors"

	"github.com/nickbooties/logfan/core"
)

// Stream writes one rendered line per accepted event to an io.Writer.
// The destination is not closed by Close; the caller owns it.
type Stream struct {
	Base
	mu  sync.Mutex
	out io.Writer
}

// NewStream creates a writer over an arbitrary destination.
func NewStream(out io.Writer) *Stream {
	return &Stream{out: out}
}

// Write renders and emits the event.
func (s *Stream) Write(event *core.LogEvent) error {
	if !s.Accepts(event.Severity) {
		return nil
	}
	line, err := s.Render(event)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.WriteString(s.out, line+"\n"); err != nil {
		return errors.Wrap(err, "write log line")
	}
	return nil
}

// Close is a no-op; the underlying destination belongs to the caller.
func (s *Stream) Close() error {
	return nil
}
