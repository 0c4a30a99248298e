// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package tenant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mylegitech/api/internal/authorization"
	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/mail"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/storage"
	"github.com/mylegitech/api/internal/tracing"
	"github.com/mylegitech/api/internal/types"
)

type Service struct {
	storage StorageInterface
	authz   authorization.AuthorizerInterface
	mail    mail.MailInterface

	invitationBaseURL  string
	invitationLifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz authorization.AuthorizerInterface,
	mailer mail.MailInterface,
	invitationBaseURL string,
	invitationLifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:            storage,
		authz:              authz,
		mail:               mailer,
		invitationBaseURL:  invitationBaseURL,
		invitationLifetime: invitationLifetime,
		tracer:             tracer,
		monitor:            monitor,
		logger:             logger,
	}
}

// CreateTenant creates the tenant with the caller as OWNER. The slug is
// pre-checked for a precise conflict error; the unique constraint remains
// the authoritative guard under concurrency.
func (s *Service) CreateTenant(ctx context.Context, userID, name, slug string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	if _, err := s.storage.GetTenantBySlug(ctx, slug); err == nil {
		return nil, ErrSlugAlreadyExists
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}

	created, err := s.storage.CreateTenant(ctx, name, slug, userID)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrSlugAlreadyExists
		}
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	created.MyRole = types.RoleOwner
	return created, nil
}

func (s *Service) ListTenants(ctx context.Context, userID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	return s.storage.ListTenantsByUserID(ctx, userID)
}

// GetTenant loads the tenant and annotates it with the caller's role. The
// tenant's existence is checked before membership so a member of another
// tenant still gets a 404 for an ID that does not exist.
func (s *Service) GetTenant(ctx context.Context, userID, tenantID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	t, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	m, err := s.authz.Authorize(ctx, userID, tenantID, authorization.OpTenantView)
	if err != nil {
		return nil, err
	}

	t.MyRole = m.Role
	return t, nil
}

func (s *Service) UpdateTenant(ctx context.Context, userID, tenantID string, name, slug *string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateTenant")
	defer span.End()

	t, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	m, err := s.authz.Authorize(ctx, userID, tenantID, authorization.OpTenantUpdate)
	if err != nil {
		return nil, err
	}

	if slug != nil && *slug != t.Slug {
		if _, err := s.storage.GetTenantBySlug(ctx, *slug); err == nil {
			return nil, ErrSlugAlreadyExists
		} else if !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
	}

	updated, err := s.storage.UpdateTenant(ctx, tenantID, name, slug)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrSlugAlreadyExists
		}
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	updated.MyRole = m.Role
	return updated, nil
}

func (s *Service) DeleteTenant(ctx context.Context, userID, tenantID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.DeleteTenant")
	defer span.End()

	if _, err := s.storage.GetTenantByID(ctx, tenantID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrTenantNotFound
		}
		return fmt.Errorf("failed to get tenant: %w", err)
	}

	if _, err := s.authz.Authorize(ctx, userID, tenantID, authorization.OpTenantDelete); err != nil {
		return err
	}

	if err := s.storage.DeleteTenant(ctx, tenantID); err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	return nil
}

func (s *Service) ListMembers(ctx context.Context, userID, tenantID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListMembers")
	defer span.End()

	if _, err := s.authz.Authorize(ctx, userID, tenantID, authorization.OpMemberList); err != nil {
		return nil, err
	}

	return s.storage.ListMembersByTenantID(ctx, tenantID)
}

func (s *Service) AddMember(ctx context.Context, requestUserID, tenantID, targetUserID string, role types.Role) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.AddMember")
	defer span.End()

	if _, err := s.authz.Authorize(ctx, requestUserID, tenantID, authorization.OpMemberAdd); err != nil {
		return nil, err
	}

	if _, err := s.storage.GetUserByID(ctx, targetUserID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if _, err := s.storage.GetMembership(ctx, targetUserID, tenantID); err == nil {
		return nil, ErrUserAlreadyInTenant
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	member, err := s.storage.AddMember(ctx, targetUserID, tenantID, role)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrUserAlreadyInTenant
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return member, nil
}

func (s *Service) UpdateMemberRole(ctx context.Context, requestUserID, tenantID, targetUserID string, role types.Role) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.UpdateMemberRole")
	defer span.End()

	if _, err := s.authz.Authorize(ctx, requestUserID, tenantID, authorization.OpMemberUpdateRole); err != nil {
		return nil, err
	}

	target, err := s.storage.GetMembership(ctx, targetUserID, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotInTenant
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	if err := authorization.CheckRoleChange(target.Role, role); err != nil {
		return nil, err
	}

	updated, err := s.storage.UpdateMemberRole(ctx, targetUserID, tenantID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}

	return updated, nil
}

func (s *Service) RemoveMember(ctx context.Context, requestUserID, tenantID, targetUserID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.RemoveMember")
	defer span.End()

	if _, err := s.authz.Authorize(ctx, requestUserID, tenantID, authorization.OpMemberRemove); err != nil {
		return err
	}

	target, err := s.storage.GetMembership(ctx, targetUserID, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotInTenant
		}
		return fmt.Errorf("failed to get membership: %w", err)
	}

	if err := authorization.CheckRemoval(target.Role); err != nil {
		return err
	}

	if err := s.storage.RemoveMember(ctx, targetUserID, tenantID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	return nil
}

// CreateInvitation runs the invite sequence: authorize, load tenant,
// reject existing members and active pending invitations, insert, send the
// email. A failed send compensates by deleting the fresh invitation so the
// admin can retry without hitting the pending-invitation guard.
func (s *Service) CreateInvitation(ctx context.Context, inviterID, tenantID, email string, role types.Role) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateInvitation")
	defer span.End()

	if _, err := s.authz.Authorize(ctx, inviterID, tenantID, authorization.OpInvitationCreate); err != nil {
		return nil, err
	}

	t, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	if existing, err := s.storage.GetUserByEmail(ctx, email); err == nil {
		if _, err := s.storage.GetMembership(ctx, existing.ID, tenantID); err == nil {
			return nil, ErrUserAlreadyMember
		} else if !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to check membership: %w", err)
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}

	if _, err := s.storage.GetPendingInvitationByEmailAndTenant(ctx, email, tenantID); err == nil {
		return nil, ErrPendingInvitationExists
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check pending invitations: %w", err)
	}

	if role == "" {
		role = types.RoleMember
	}

	// The token is a bare UUIDv4, carried in the invitation link.
	token := uuid.NewString()

	invitation, err := s.storage.CreateInvitation(ctx, &types.Invitation{
		Email:     email,
		Token:     token,
		Role:      role,
		ExpiresAt: time.Now().Add(s.invitationLifetime),
		TenantID:  tenantID,
		InvitedBy: inviterID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	sendErr := s.mail.SendInvitationEmail(ctx, mail.InvitationEmail{
		ToEmail:        invitation.Email,
		TenantName:     t.Name,
		InviterName:    invitation.InviterDisplayName(),
		InvitationLink: fmt.Sprintf("%s?token=%s", s.invitationBaseURL, token),
	})
	if sendErr != nil {
		s.logger.Errorf("failed to send invitation email to %s: %v", invitation.Email, sendErr)
		if err := s.storage.DeleteInvitation(ctx, invitation.ID); err != nil {
			s.logger.Errorf("failed to roll back invitation %s: %v", invitation.ID, err)
		}
		return nil, ErrInvitationSendFailed
	}

	return invitation, nil
}

func (s *Service) ListInvitations(ctx context.Context, userID, tenantID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListInvitations")
	defer span.End()

	if _, err := s.authz.Authorize(ctx, userID, tenantID, authorization.OpInvitationList); err != nil {
		return nil, err
	}

	return s.storage.ListPendingInvitationsByTenantID(ctx, tenantID)
}

func (s *Service) CancelInvitation(ctx context.Context, userID, tenantID, invitationID string) error {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CancelInvitation")
	defer span.End()

	if _, err := s.authz.Authorize(ctx, userID, tenantID, authorization.OpInvitationCancel); err != nil {
		return err
	}

	invitation, err := s.storage.GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return fmt.Errorf("failed to get invitation: %w", err)
	}

	if invitation.TenantID != tenantID {
		return ErrInvitationNotBelongToTenant
	}
	if invitation.Accepted {
		return ErrCannotCancelAccepted
	}

	if err := s.storage.DeleteInvitation(ctx, invitationID); err != nil {
		// Lost a race with a concurrent cancel.
		if errors.Is(err, storage.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return fmt.Errorf("failed to delete invitation: %w", err)
	}

	return nil
}

// ValidateInvitation is the public pre-acceptance check. Not-found,
// already-accepted and expired are distinct failures so the landing page
// can explain what happened.
func (s *Service) ValidateInvitation(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ValidateInvitation")
	defer span.End()

	invitation, err := s.storage.GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	if invitation.Accepted {
		return nil, ErrInvitationAlreadyAccepted
	}
	if invitation.IsExpired() {
		return nil, ErrInvitationExpired
	}

	return invitation, nil
}
