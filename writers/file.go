package writers

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/nickbooties/logfan/core"
)

// File appends one rendered line per accepted event to a log file.
// The file is opened at construction and kept open until Close.
type File struct {
	Base
	mu   sync.Mutex
	path string
	file *os.File
}

// NewFile creates a file writer, creating the parent directory and
// the file itself as needed.
func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create log directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}
	return &File{path: path, file: f}, nil
}

// Path returns the destination path.
func (w *File) Path() string {
	return w.path
}

// Write renders and appends the event.
func (w *File) Write(event *core.LogEvent) error {
	if !w.Accepts(event.Severity) {
		return nil
	}
	line, err := w.Render(event)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return errors.New("log file is closed")
	}
	if _, err := w.file.WriteString(line + "\n"); err != nil {
		return errors.Wrapf(err, "append to %s", w.path)
	}
	return nil
}

// Close syncs and closes the file. Subsequent writes fail.
func (w *File) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	f := w.file
	w.file = nil
	if err := f.Sync(); err != nil {
		f.Close()
		return errors.Wrap(err, "sync log file")
	}
	return errors.Wrap(f.Close(), "close log file")
}
