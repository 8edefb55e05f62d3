package writers

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/pkg/errors"

	"github.com/nickbooties/logfan/core"
)

// SMTPOptions configures an email destination.
type SMTPOptions struct {
	// Addr is the mail server address as host:port.
	Addr string

	// Auth is optional SMTP authentication.
	Auth smtp.Auth

	// From is the envelope sender.
	From string

	// To lists the recipients. At least one is required.
	To []string

	// Subject is the message subject. A reasonable default is used
	// when empty; the event severity is always appended.
	Subject string
}

// SMTP emails each accepted event as an individual message. Delivery
// is synchronous; a slow mail server blocks the dispatch that reached
// this writer. Attach a priority filter so only severe events get
// this far.
type SMTP struct {
	Base
	opts SMTPOptions

	// send performs the delivery, swappable in tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTP creates an email writer.
func NewSMTP(opts SMTPOptions) (*SMTP, error) {
	if opts.Addr == "" {
		return nil, errors.New("smtp writer requires a server address")
	}
	if opts.From == "" {
		return nil, errors.New("smtp writer requires a sender")
	}
	if len(opts.To) == 0 {
		return nil, errors.New("smtp writer requires at least one recipient")
	}
	if opts.Subject == "" {
		opts.Subject = "Log event"
	}
	return &SMTP{opts: opts, send: smtp.SendMail}, nil
}

// Write renders the event and mails it.
func (w *SMTP) Write(event *core.LogEvent) error {
	if !w.Accepts(event.Severity) {
		return nil
	}
	body, err := w.Render(event)
	if err != nil {
		return err
	}

	msg := w.message(event.Severity, body)
	if err := w.send(w.opts.Addr, w.opts.Auth, w.opts.From, w.opts.To, msg); err != nil {
		return errors.Wrapf(err, "send log mail via %s", w.opts.Addr)
	}
	return nil
}

// Close is a no-op; connections are not pooled.
func (w *SMTP) Close() error {
	return nil
}

func (w *SMTP) message(severity core.Severity, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", w.opts.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(w.opts.To, ", "))
	fmt.Fprintf(&b, "Subject: %s [%s]\r\n", w.opts.Subject, severity)
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
