package formatters

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/nickbooties/logfan/core"
)

// JSON renders an event as a structured single-line JSON payload,
// suitable for writers feeding log shippers.
type JSON struct {
	// TimestampFormat controls the "time" field layout. Defaults to
	// time.RFC3339Nano.
	TimestampFormat string

	// Clock supplies the emission timestamp. Overridable for tests.
	Clock func() time.Time
}

// NewJSON creates a JSON formatter with default settings.
func NewJSON() *JSON {
	return &JSON{}
}

type jsonEvent struct {
	Time     string   `json:"time"`
	Severity string   `json:"severity"`
	Message  string   `json:"message"`
	Number   string   `json:"number,omitempty"`
	File     string   `json:"file,omitempty"`
	Line     int      `json:"line,omitempty"`
	Context  []string `json:"context,omitempty"`
}

// Format renders the event as JSON.
func (j *JSON) Format(event *core.LogEvent) (string, error) {
	layout := j.TimestampFormat
	if layout == "" {
		layout = time.RFC3339Nano
	}
	clock := j.Clock
	if clock == nil {
		clock = time.Now
	}

	payload := jsonEvent{
		Time:     clock().Format(layout),
		Severity: event.Severity.String(),
		Message:  event.Message,
		Number:   event.Number,
		File:     event.File,
		Line:     event.Line,
	}
	for _, frame := range event.Context {
		payload.Context = append(payload.Context, frame.String())
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "marshal log event")
	}
	return string(data), nil
}
