// Package mailer sends the contact-form notification email. Delivery is
// best-effort: callers dispatch off the request path and only log failures.
package mailer

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/imdhruv9/uttam-printing/internal/config"
)

// Notification carries the contact submission fields for the email body.
type Notification struct {
	Name        string
	Email       string
	Phone       string
	Message     string
	ProductID   *uuid.UUID
	ProductName string
}

// Sender delivers contact-form notifications.
type Sender interface {
	SendContactNotification(n Notification) error
}

// SMTPSender delivers notifications over SMTP.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewSMTPSender builds a sender from mail configuration.
func NewSMTPSender(cfg config.Mail) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		to:     cfg.To,
	}
}

func (s *SMTPSender) SendContactNotification(n Notification) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.to)
	m.SetHeader("Subject", "New Contact Form Submission - Uttam Printing")
	m.SetBody("text/plain", buildBody(n))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	return nil
}

func buildBody(n Notification) string {
	var b strings.Builder
	b.WriteString("You have received a new contact form submission:\n\n")
	b.WriteString("Customer Details:\n")
	b.WriteString("================\n")
	fmt.Fprintf(&b, "Name: %s\n", n.Name)
	fmt.Fprintf(&b, "Email: %s\n", n.Email)
	if n.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", n.Phone)
	}
	b.WriteString("\nMessage:\n")
	b.WriteString("========\n")
	b.WriteString(n.Message)
	b.WriteString("\n\n")
	if n.ProductID != nil {
		fmt.Fprintf(&b, "Product ID: %s\n", n.ProductID)
		if n.ProductName != "" {
			fmt.Fprintf(&b, "Product: %s\n", n.ProductName)
		}
	}
	b.WriteString("\n---\n")
	b.WriteString("This is an automated message from the Uttam Printing website.")
	return b.String()
}
