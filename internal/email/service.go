// Package email relays contact-form submissions to the site inbox via
// SMTP.
package email

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Config holds SMTP configuration. Email is disabled when Host or From
// is empty.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
	// ContactTo is the inbox contact-form submissions are delivered to.
	ContactTo string
}

// Service sends contact-form mail.
type Service struct {
	config Config
	server string
	auth   smtp.Auth
}

func NewService(config Config) *Service {
	var auth smtp.Auth
	if config.Username != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}
	return &Service{
		config: config,
		server: config.Host + ":" + config.Port,
		auth:   auth,
	}
}

// IsConfigured returns true if the service can deliver mail.
func (s *Service) IsConfigured() bool {
	return s.config.Host != "" && s.config.Port != "" && s.config.From != "" && s.config.ContactTo != ""
}

// ContactMessage is one submission from the public contact form.
type ContactMessage struct {
	Name    string
	ReplyTo string
	Body    string
}

// SendContact delivers the submission to the configured inbox with the
// visitor's address as Reply-To.
func (s *Service) SendContact(msg ContactMessage) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email not configured")
	}

	payload := buildContactMail(s.config, msg)
	if err := smtp.SendMail(s.server, s.auth, s.config.From, []string{s.config.ContactTo}, payload); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}
	return nil
}

func buildContactMail(cfg Config, msg ContactMessage) []byte {
	from := cfg.From
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.From)
	}

	subject := "Contact form: " + headerSafe(msg.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "To: %s\r\n", cfg.ContactTo)
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", headerSafe(msg.ReplyTo))
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Name: %s\r\n", msg.Name)
	fmt.Fprintf(&b, "Email: %s\r\n", msg.ReplyTo)
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	b.WriteString("\r\n")
	return []byte(b.String())
}

// headerSafe strips CR/LF so form input cannot inject mail headers.
func headerSafe(value string) string {
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	return strings.TrimSpace(value)
}
