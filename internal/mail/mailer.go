package mail

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gocart-admin/internal/config"

	gomail "gopkg.in/gomail.v2"
)

// ErrBadHeader marks a send rejected because the recipient or subject would
// break SMTP headers. Callers recover from this one; every other transport
// error is passed through.
var ErrBadHeader = errors.New("mail: header contains newline characters")

// Sender is the outbound mail seam. Handlers depend on this so tests can
// substitute a fake transport.
type Sender interface {
	Send(to, subject, body string) error
}

type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func NewSMTPSender(env config.Env) SMTPSender {
	port, err := strconv.Atoi(env.SMTPPort)
	if err != nil || port <= 0 {
		port = 587
	}
	return SMTPSender{
		Host:     env.SMTPHost,
		Port:     port,
		Username: env.SMTPUser,
		Password: env.SMTPPass,
		From:     env.MailFrom,
	}
}

func (s SMTPSender) Send(to, subject, body string) error {
	if hasBadHeader(to) {
		return fmt.Errorf("%w: recipient %q", ErrBadHeader, to)
	}
	if hasBadHeader(subject) {
		return fmt.Errorf("%w: subject %q", ErrBadHeader, subject)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.Username, s.Password)
	return d.DialAndSend(m)
}

func hasBadHeader(v string) bool {
	return strings.ContainsAny(v, "\r\n")
}
