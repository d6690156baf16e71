package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/resend/resend-go/v2"

	"peduli-kasih/internal/config"
)

type Service interface {
	SendStatusEmail(ctx context.Context, toEmail, fullName, title, message string) error
	SendWelcomeEmail(ctx context.Context, toEmail, fullName, tempPassword string) error
}

type service struct {
	client       *resend.Client
	config       *config.Config
	templatePath string
}

func NewService(cfg *config.Config) Service {
	client := resend.NewClient(cfg.ResendAPIKey)
	templatePath := "internal/service/templates/email"
	return &service{
		client:       client,
		config:       cfg,
		templatePath: templatePath,
	}
}

func (s *service) sendEmail(toEmail, subject, templateName string, data interface{}) error {
	tmpl, err := template.ParseFiles(
		filepath.Join(s.templatePath, "layout.html"),
		filepath.Join(s.templatePath, templateName),
	)
	if err != nil {
		return fmt.Errorf("failed to parse email templates: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Peduli Kasih <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err = s.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *service) SendStatusEmail(ctx context.Context, toEmail, fullName, title, message string) error {
	data := map[string]string{
		"FullName": fullName,
		"Title":    title,
		"Message":  message,
		"Domain":   s.config.Domain,
	}
	return s.sendEmail(toEmail, title, "status_update.html", data)
}

func (s *service) SendWelcomeEmail(ctx context.Context, toEmail, fullName, tempPassword string) error {
	data := map[string]string{
		"FullName":     fullName,
		"TempPassword": tempPassword,
		"Domain":       s.config.Domain,
	}
	return s.sendEmail(toEmail, "Welcome to Peduli Kasih", "welcome.html", data)
}
