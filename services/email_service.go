package services

import (
	"fmt"
	"log"
	"net/smtp"
)

type EmailService interface {
	Send(to, subject, body string) error
}

// SMTPEmailService sends plain HTML mail through a configured SMTP relay.
// With no host configured it logs the mail instead, which keeps the password
// reset flow usable in development.
type SMTPEmailService struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

func NewSMTPEmailService(host, port, user, pass, from string) *SMTPEmailService {
	return &SMTPEmailService{Host: host, Port: port, User: user, Pass: pass, From: from}
}

func (s *SMTPEmailService) Send(to, subject, body string) error {
	if s.Host == "" {
		log.Printf("smtp not configured, would send to %s: %s", to, subject)
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n",
		s.From, to, subject, body)

	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)
	return smtp.SendMail(s.Host+":"+s.Port, auth, s.From, []string{to}, []byte(msg))
}
