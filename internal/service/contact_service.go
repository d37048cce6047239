package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/govjobs/govjobs-backend/internal/mailer"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/rs/zerolog"
)

const (
	contactFromName       = "All Government Alerts"
	contactDefaultSubject = "New Contact Form Submission"
)

// ContactService forwards contact form submissions to the site mailbox.
type ContactService struct {
	sender mailer.Sender
	log    zerolog.Logger
}

func NewContactService(sender mailer.Sender, log zerolog.Logger) *ContactService {
	return &ContactService{
		sender: sender,
		log:    log.With().Str("component", "contact_service").Logger(),
	}
}

// Submit mails the message to the site mailbox with Reply-To set to the
// visitor. Any delivery failure is reported as ErrMailFailed.
func (s *ContactService) Submit(ctx context.Context, req model.ContactRequest) error {
	msg := BuildContactMessage(s.sender.Address(), req)
	if err := s.sender.Send(ctx, msg); err != nil {
		s.log.Error().Err(err).Str("reply_to", req.Email).Msg("Contact email failed")
		return fmt.Errorf("%w: %v", ErrMailFailed, err)
	}
	s.log.Info().Str("reply_to", req.Email).Msg("Contact email sent")
	return nil
}

// BuildContactMessage renders a submission as mail addressed to mailbox.
// User input is HTML-escaped.
func BuildContactMessage(mailbox string, req model.ContactRequest) mailer.Message {
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = contactDefaultSubject
	}

	var b strings.Builder
	b.WriteString("<h3>New Contact Message</h3>\n")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>\n", html.EscapeString(req.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>\n", html.EscapeString(req.Email))
	b.WriteString("<p><strong>Message:</strong></p>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", strings.ReplaceAll(html.EscapeString(req.Message), "\n", "<br>"))

	return mailer.Message{
		FromName: contactFromName,
		From:     mailbox,
		To:       mailbox,
		ReplyTo:  req.Email,
		Subject:  subject,
		HTML:     b.String(),
	}
}
