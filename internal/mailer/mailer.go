// Package mailer отправляет служебные письма: подтверждение адреса,
// приветствие и сброс пароля.
package mailer

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/avc-dev/shortlink/internal/config"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	subjectVerification = "Verify Your Email Address - URL Shortener"
	subjectWelcome      = "Welcome to URL Shortener!"
	subjectReset        = "Reset Your Password - URL Shortener"
)

// Email представляет письмо
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// Sender доставляет подготовленные сообщения. *gomail.Dialer реализует этот интерфейс.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer отправляет письма через SMTP или, если SMTP не настроен, пишет их в лог
type Mailer struct {
	from            string
	frontendURL     string
	verificationTTL time.Duration
	resetTTL        time.Duration
	sender          Sender
	templates       *template.Template
	logger          *zap.Logger
}

// New создает Mailer. При пустом SMTP_HOST письма только логируются (консольный режим).
func New(cfg *config.Config, logger *zap.Logger) (*Mailer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	m := &Mailer{
		from:            cfg.SMTP.From,
		frontendURL:     strings.TrimRight(cfg.FrontendURL, "/"),
		verificationTTL: cfg.Auth.VerificationTokenTTL,
		resetTTL:        cfg.Auth.ResetTokenTTL,
		templates:       tmpl,
		logger:          logger,
	}

	if cfg.SMTP.Enabled() {
		m.sender = gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	} else {
		logger.Warn("SMTP is not configured, emails will be logged instead of sent")
	}

	return m, nil
}

// WithSender заменяет способ доставки писем
func (m *Mailer) WithSender(s Sender) *Mailer {
	m.sender = s
	return m
}

type templateData struct {
	Name    string
	Link    string
	Expires string
}

// SendVerificationEmail отправляет ссылку подтверждения адреса
func (m *Mailer) SendVerificationEmail(ctx context.Context, to, name, token string) error {
	link := m.link("/verify-email", token)
	return m.sendTemplate(ctx, to, subjectVerification, "verification.html", templateData{
		Name:    name,
		Link:    link,
		Expires: humanDuration(m.verificationTTL),
	}, fmt.Sprintf("Hi %s, verify your email address: %s", name, link))
}

// SendWelcomeEmail отправляет приветствие после подтверждения адреса
func (m *Mailer) SendWelcomeEmail(ctx context.Context, to, name string) error {
	link := m.frontendURL + "/dashboard"
	return m.sendTemplate(ctx, to, subjectWelcome, "welcome.html", templateData{
		Name: name,
		Link: link,
	}, fmt.Sprintf("Hi %s, your email has been verified successfully! Dashboard: %s", name, link))
}

// SendPasswordResetEmail отправляет ссылку сброса пароля
func (m *Mailer) SendPasswordResetEmail(ctx context.Context, to, name, token string) error {
	link := m.link("/reset-password", token)
	return m.sendTemplate(ctx, to, subjectReset, "reset_password.html", templateData{
		Name:    name,
		Link:    link,
		Expires: humanDuration(m.resetTTL),
	}, fmt.Sprintf("Hi %s, reset your password: %s", name, link))
}

func (m *Mailer) link(path, token string) string {
	return m.frontendURL + path + "?token=" + url.QueryEscape(token)
}

func (m *Mailer) sendTemplate(ctx context.Context, to, subject, name string, data templateData, text string) error {
	var buf bytes.Buffer
	if err := m.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	return m.Send(ctx, Email{
		To:       []string{to},
		Subject:  subject,
		Body:     text,
		HTMLBody: buf.String(),
	})
}

// Send отправляет письмо
func (m *Mailer) Send(ctx context.Context, email Email) error {
	if len(email.To) == 0 {
		return errors.New("no recipients specified")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if m.sender == nil {
		m.logger.Info("email (console mode)",
			zap.Strings("to", email.To),
			zap.String("subject", email.Subject),
			zap.String("body", email.Body),
		)
		return nil
	}

	msg := gomail.NewMessage()
	m.setEmailMessage(msg, email)

	if err := m.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email %q: %w", email.Subject, err)
	}

	m.logger.Info("email sent",
		zap.Strings("to", email.To),
		zap.String("subject", email.Subject),
	)
	return nil
}

func (m *Mailer) setEmailMessage(msg *gomail.Message, email Email) {
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email.To...)
	msg.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		msg.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			msg.AddAlternative("text/plain", email.Body)
		}
		return
	}
	msg.SetBody("text/plain", email.Body)
}

// humanDuration форматирует срок действия ссылки для текста письма
func humanDuration(d time.Duration) string {
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		hours := int(d / time.Hour)
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	case d >= time.Minute && d%time.Minute == 0:
		return fmt.Sprintf("%d minutes", int(d/time.Minute))
	default:
		return d.String()
	}
}
