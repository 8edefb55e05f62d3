package writers

import (
	"sync"

	"github.com/nickbooties/logfan/core"
)

// Memory captures accepted events and their rendered form in memory.
// It exists for tests and assertions, not production use.
type Memory struct {
	Base
	mu     sync.RWMutex
	events []core.LogEvent
	lines  []string
}

// NewMemory creates an empty memory writer.
func NewMemory() *Memory {
	return &Memory{}
}

// Write stores a copy of the event alongside its rendering.
func (m *Memory) Write(event *core.LogEvent) error {
	if !m.Accepts(event.Severity) {
		return nil
	}
	line, err := m.Render(event)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, *event)
	m.lines = append(m.lines, line)
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}

// Events returns a copy of all captured events.
func (m *Memory) Events() []core.LogEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]core.LogEvent, len(m.events))
	copy(out, m.events)
	return out
}

// Lines returns a copy of all rendered representations.
func (m *Memory) Lines() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out
}

// Count returns the number of captured events.
func (m *Memory) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.events)
}

// Last returns the most recently captured event, or nil when empty.
func (m *Memory) Last() *core.LogEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.events) == 0 {
		return nil
	}
	event := m.events[len(m.events)-1]
	return &event
}

// Clear discards everything captured so far.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = m.events[:0]
	m.lines = m.lines[:0]
}
