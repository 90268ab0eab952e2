package services

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

// Mailer dispatches a structured message over the email transport.
type Mailer interface {
	Send(to []string, subject, contentType, body string) error
}

// SMTPMailer sends mail through an SMTP server using gomail. Defaults target
// Gmail, matching the deployment this service was written for.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
}

func NewSMTPMailer() *SMTPMailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}

	port := 587
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		fmt.Sscanf(portStr, "%d", &port)
	}

	return &SMTPMailer{
		host:     host,
		port:     port,
		username: os.Getenv("USER_EMAIL"),
		password: os.Getenv("USER_PASSWORD"),
	}
}

func (s *SMTPMailer) Send(to []string, subject, contentType, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.username)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody(contentType, body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	return d.DialAndSend(m)
}
