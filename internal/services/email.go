package services

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/hydrafit/hydra-api/internal/config"
)

//go:embed templates/invite_email.html
var emailTemplates embed.FS

// InviteEmailData is what the invite email template is rendered with.
type InviteEmailData struct {
	TeamName     string
	TeamImageURL string
	InviterName  string
	InviterEmail string
	InviteeName  string
	InviteURL    string
}

// EmailSender dispatches transactional email. Implementations own any retry
// policy; callers treat a returned error as a failed operation.
type EmailSender interface {
	SendInvite(to string, data InviteEmailData) error
}

// SMTPSender sends mail through a plain SMTP relay.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	fromName string
	tmpl     *template.Template
}

func NewSMTPSender(cfg *config.Config) (*SMTPSender, error) {
	tmpl, err := template.ParseFS(emailTemplates, "templates/invite_email.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse invite email template: %w", err)
	}
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPass,
		from:     cfg.EmailFrom,
		fromName: cfg.EmailSender,
		tmpl:     tmpl,
	}, nil
}

// SendInvite renders the invite template and dispatches it. Not retried here.
func (s *SMTPSender) SendInvite(to string, data InviteEmailData) error {
	var body bytes.Buffer
	if err := s.tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render invite email: %w", err)
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.fromName, s.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: You have been invited to join %s\r\n", data.TeamName)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := smtp.SendMail(addr, auth, s.from, []string{to}, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send invite email: %w", err)
	}
	return nil
}
