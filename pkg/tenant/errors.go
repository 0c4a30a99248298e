// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package tenant

import "fmt"

var (
	ErrTenantNotFound    = fmt.Errorf("tenant not found")
	ErrSlugAlreadyExists = fmt.Errorf("tenant with this slug already exists")

	ErrUserNotFound        = fmt.Errorf("user not found")
	ErrUserAlreadyInTenant = fmt.Errorf("user is already a member of this tenant")
	ErrUserNotInTenant     = fmt.Errorf("user is not a member of this tenant")

	ErrUserAlreadyMember       = fmt.Errorf("this user is already a member of the tenant")
	ErrPendingInvitationExists = fmt.Errorf("there is already a pending invitation for this email")
	ErrInvitationSendFailed    = fmt.Errorf("failed to send invitation email")

	ErrInvitationNotFound          = fmt.Errorf("invitation not found")
	ErrInvitationNotBelongToTenant = fmt.Errorf("this invitation does not belong to the specified tenant")
	ErrCannotCancelAccepted        = fmt.Errorf("cannot cancel an invitation that has already been accepted")
	ErrInvitationAlreadyAccepted   = fmt.Errorf("this invitation has already been accepted")
	ErrInvitationExpired           = fmt.Errorf("this invitation has expired")
)
