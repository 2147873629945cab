package mail

import (
	"errors"
	"testing"

	"gocart-admin/internal/config"
)

func TestSendRejectsHeaderInjection(t *testing.T) {
	s := SMTPSender{Host: "localhost", Port: 587, From: "noreply@gocart.local"}

	err := s.Send("victim@example.com\r\nBcc: other@example.com", "Hello", "body")
	if !errors.Is(err, ErrBadHeader) {
		t.Fatalf("expected ErrBadHeader for recipient, got %v", err)
	}

	err = s.Send("victim@example.com", "Hello\nX-Injected: 1", "body")
	if !errors.Is(err, ErrBadHeader) {
		t.Fatalf("expected ErrBadHeader for subject, got %v", err)
	}
}

func TestNewSMTPSenderPortFallback(t *testing.T) {
	s := NewSMTPSender(config.Env{SMTPHost: "mail.local", SMTPPort: "not-a-port", MailFrom: "x@y.z"})
	if s.Port != 587 {
		t.Fatalf("expected fallback port 587, got %d", s.Port)
	}
	s = NewSMTPSender(config.Env{SMTPHost: "mail.local", SMTPPort: "2525", MailFrom: "x@y.z"})
	if s.Port != 2525 {
		t.Fatalf("expected port 2525, got %d", s.Port)
	}
}
