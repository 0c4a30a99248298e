// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package mail

import "context"

// NoopMailer drops all email. Used in development and when no Mailjet
// credentials are configured.
type NoopMailer struct{}

func NewNoopMailer() *NoopMailer {
	return &NoopMailer{}
}

func (n *NoopMailer) SendInvitationEmail(ctx context.Context, email InvitationEmail) error {
	return nil
}

func (n *NoopMailer) SendWelcomeEmail(ctx context.Context, email WelcomeEmail) error {
	return nil
}
