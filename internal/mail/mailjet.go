// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package mail

import (
	"context"
	"fmt"

	mailjet "github.com/mailjet/mailjet-apiv3-go/v4"

	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/tracing"
)

type Config struct {
	APIKey      string
	SecretKey   string
	SenderEmail string
	SenderName  string
}

type Mailer struct {
	client      *mailjet.Client
	senderEmail string
	senderName  string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Mailer) SendInvitationEmail(ctx context.Context, email InvitationEmail) error {
	_, span := m.tracer.Start(ctx, "mail.Mailer.SendInvitationEmail")
	defer span.End()

	toName := email.ToName
	if toName == "" {
		toName = email.ToEmail
	}

	htmlContent, err := renderTemplate("invitation.html.tmpl", email)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Invitation to join %s", email.TenantName)
	if err := m.send(email.ToEmail, toName, subject, htmlContent); err != nil {
		m.logger.Errorf("failed to send invitation email to %s: %v", email.ToEmail, err)
		return fmt.Errorf("failed to send invitation email: %w", err)
	}

	m.logger.Infof("invitation email sent to %s", email.ToEmail)
	return nil
}

func (m *Mailer) SendWelcomeEmail(ctx context.Context, email WelcomeEmail) error {
	_, span := m.tracer.Start(ctx, "mail.Mailer.SendWelcomeEmail")
	defer span.End()

	htmlContent, err := renderTemplate("welcome.html.tmpl", email)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Welcome to %s!", email.TenantName)
	if err := m.send(email.ToEmail, email.ToName, subject, htmlContent); err != nil {
		m.logger.Errorf("failed to send welcome email to %s: %v", email.ToEmail, err)
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	m.logger.Infof("welcome email sent to %s", email.ToEmail)
	return nil
}

func (m *Mailer) send(toEmail, toName, subject, htmlContent string) error {
	messages := mailjet.MessagesV31{
		Info: []mailjet.InfoMessagesV31{
			{
				From: &mailjet.RecipientV31{
					Email: m.senderEmail,
					Name:  m.senderName,
				},
				To: &mailjet.RecipientsV31{
					{
						Email: toEmail,
						Name:  toName,
					},
				},
				Subject:  subject,
				HTMLPart: htmlContent,
			},
		},
	}

	_, err := m.client.SendMailV31(&messages)
	return err
}

func NewMailer(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Mailer {
	return &Mailer{
		client:      mailjet.NewMailjetClient(cfg.APIKey, cfg.SecretKey),
		senderEmail: cfg.SenderEmail,
		senderName:  cfg.SenderName,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}
