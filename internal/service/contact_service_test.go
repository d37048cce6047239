package service

import (
	"context"
	"errors"
	"testing"

	"github.com/govjobs/govjobs-backend/internal/mailer"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []mailer.Message
	err  error
}

func (r *recordingSender) Send(_ context.Context, msg mailer.Message) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, msg)
	return nil
}

func (r *recordingSender) Address() string { return "alerts@example.com" }

func TestContactSubmit(t *testing.T) {
	sender := &recordingSender{}
	svc := NewContactService(sender, zerolog.Nop())

	err := svc.Submit(context.Background(), model.ContactRequest{
		Name:    "Ravi <b>",
		Email:   "ravi@example.com",
		Message: "line one\n<script>alert(1)</script>",
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "All Government Alerts", msg.FromName)
	assert.Equal(t, "alerts@example.com", msg.From)
	assert.Equal(t, "alerts@example.com", msg.To)
	assert.Equal(t, "ravi@example.com", msg.ReplyTo)
	assert.Equal(t, "New Contact Form Submission", msg.Subject)
	assert.Contains(t, msg.HTML, "Ravi &lt;b&gt;")
	assert.Contains(t, msg.HTML, "line one<br>&lt;script&gt;")
	assert.NotContains(t, msg.HTML, "<script>")
}

func TestContactSubjectKept(t *testing.T) {
	msg := BuildContactMessage("box@example.com", model.ContactRequest{
		Name: "A", Email: "a@example.com", Subject: "Exam date query", Message: "hi",
	})
	assert.Equal(t, "Exam date query", msg.Subject)
}

func TestContactSubmitFailure(t *testing.T) {
	tests := []error{mailer.ErrNotConfigured, errors.New("dial tcp: connection refused")}
	for _, sendErr := range tests {
		svc := NewContactService(&recordingSender{err: sendErr}, zerolog.Nop())
		err := svc.Submit(context.Background(), model.ContactRequest{Name: "A", Email: "a@example.com", Message: "hi"})
		assert.ErrorIs(t, err, ErrMailFailed)
	}
}
