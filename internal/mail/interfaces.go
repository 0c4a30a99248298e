// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package mail

import "context"

// InvitationEmail carries everything the invitation template needs.
type InvitationEmail struct {
	ToEmail        string
	ToName         string
	TenantName     string
	InviterName    string
	InvitationLink string
}

type WelcomeEmail struct {
	ToEmail    string
	ToName     string
	TenantName string
}

type MailInterface interface {
	SendInvitationEmail(ctx context.Context, email InvitationEmail) error
	SendWelcomeEmail(ctx context.Context, email WelcomeEmail) error
}
