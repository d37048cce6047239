// Package mailer delivers outbound mail for the contact form.
package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/govjobs/govjobs-backend/internal/config"
	"github.com/rs/zerolog"
)

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("mailer: smtp credentials not configured")

// Message is a single HTML mail.
type Message struct {
	FromName string
	From     string
	To       string
	ReplyTo  string
	Subject  string
	HTML     string
}

// Sender delivers a Message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
	// Address is the mailbox mail is sent from and delivered to.
	Address() string
}

// SMTPSender sends mail through an authenticated SMTP relay (STARTTLS on 587).
type SMTPSender struct {
	cfg config.SMTPConfig
	log zerolog.Logger
}

// NewSMTPSender creates an SMTPSender.
func NewSMTPSender(cfg config.SMTPConfig, log zerolog.Logger) *SMTPSender {
	return &SMTPSender{
		cfg: cfg,
		log: log.With().Str("component", "smtp_mailer").Logger(),
	}
}

func (s *SMTPSender) Address() string {
	return s.cfg.Username
}

// Send delivers msg. smtp.SendMail has no context support, so a cancelled
// ctx only stops us from waiting for the result.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if !s.cfg.Enabled() {
		return ErrNotConfigured
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	body := Build(msg, time.Now())

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, msg.From, []string{msg.To}, body)
	}()

	select {
	case err := <-done:
		if err != nil {
			s.log.Error().Err(err).Str("smtp_addr", addr).Msg("Failed to send email")
			return fmt.Errorf("send mail: %w", err)
		}
		s.log.Info().Str("to", msg.To).Msg("Email sent")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Build renders msg as an RFC 5322 message with an HTML body.
func Build(msg Message, date time.Time) []byte {
	from := (&mail.Address{Name: msg.FromName, Address: msg.From}).String()

	var b bytes.Buffer
	writeHeader(&b, "From", from)
	writeHeader(&b, "To", msg.To)
	if msg.ReplyTo != "" {
		writeHeader(&b, "Reply-To", msg.ReplyTo)
	}
	writeHeader(&b, "Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	writeHeader(&b, "Date", date.Format(time.RFC1123Z))
	writeHeader(&b, "MIME-Version", "1.0")
	writeHeader(&b, "Content-Type", `text/html; charset="utf-8"`)
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	return b.Bytes()
}

// writeHeader drops CR and LF from values so user input cannot add headers.
func writeHeader(b *bytes.Buffer, key, value string) {
	value = strings.NewReplacer("\r", "", "\n", "").Replace(value)
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\r\n")
}
