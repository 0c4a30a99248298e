// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/mylegitech/api/internal/keycloak"
	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/mail"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/storage"
	"github.com/mylegitech/api/internal/tracing"
	"github.com/mylegitech/api/internal/types"
	"github.com/mylegitech/api/pkg/authentication"
	"github.com/mylegitech/api/pkg/tenant"
)

type Service struct {
	storage  StorageInterface
	keycloak keycloak.AdminClientInterface
	mailer   mail.MailInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	kc keycloak.AdminClientInterface,
	mailer mail.MailInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		keycloak: kc,
		mailer:   mailer,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// SyncUser reconciles the verified token identity with the local user
// table. Lookup order is Keycloak subject first, then email. An email
// match links the Keycloak subject to a user that was provisioned before
// first login, typically through an invitation. The email claim always
// wins over the local value; names are only filled in when missing
// locally so profile edits made here survive later logins.
func (s *Service) SyncUser(ctx context.Context, identity *authentication.Identity) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.SyncUser")
	defer span.End()

	user, err := s.storage.GetUserByKeycloakID(ctx, identity.Subject)
	if err == nil {
		return s.syncProfile(ctx, user, identity)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by keycloak ID: %w", err)
	}

	user, err = s.storage.GetUserByEmail(ctx, identity.Email)
	if err == nil {
		update := profileUpdate(user, identity)
		update.KeycloakID = &identity.Subject
		linked, err := s.storage.UpdateUser(ctx, user.ID, update)
		if err != nil {
			return nil, fmt.Errorf("failed to link user to keycloak: %w", err)
		}
		return linked, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	newUser := &types.User{
		Email:      identity.Email,
		KeycloakID: &identity.Subject,
	}
	if identity.FirstName != "" {
		newUser.FirstName = &identity.FirstName
	}
	if identity.LastName != "" {
		newUser.LastName = &identity.LastName
	}

	created, err := s.storage.CreateUser(ctx, newUser)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

func (s *Service) syncProfile(ctx context.Context, user *types.User, identity *authentication.Identity) (*types.User, error) {
	update := profileUpdate(user, identity)
	if update == (storage.UserUpdate{}) {
		return user, nil
	}

	synced, err := s.storage.UpdateUser(ctx, user.ID, update)
	if err != nil {
		return nil, fmt.Errorf("failed to sync user profile: %w", err)
	}
	return synced, nil
}

func profileUpdate(user *types.User, identity *authentication.Identity) storage.UserUpdate {
	var update storage.UserUpdate
	if identity.Email != "" && identity.Email != user.Email {
		update.Email = &identity.Email
	}
	if identity.FirstName != "" && user.FirstName == nil {
		update.FirstName = &identity.FirstName
	}
	if identity.LastName != "" && user.LastName == nil {
		update.LastName = &identity.LastName
	}
	return update
}

// AcceptInvitation turns a valid invitation into a membership. The invitee
// may not have an account yet; in that case a user row is created from the
// invited email alone and linked to Keycloak on first login by SyncUser.
// The membership upsert keeps acceptance idempotent with respect to a
// pre-existing membership for the same tenant.
func (s *Service) AcceptInvitation(ctx context.Context, token string) (*AcceptInvitationResult, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.AcceptInvitation")
	defer span.End()

	invitation, err := s.storage.GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, tenant.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	if invitation.Accepted {
		return nil, tenant.ErrInvitationAlreadyAccepted
	}
	if invitation.IsExpired() {
		return nil, tenant.ErrInvitationExpired
	}

	user, err := s.storage.GetUserByEmail(ctx, invitation.Email)
	if errors.Is(err, storage.ErrNotFound) {
		user, err = s.storage.CreateUser(ctx, &types.User{Email: invitation.Email})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve invited user: %w", err)
	}

	requiresLogin := user.KeycloakID == nil
	if requiresLogin {
		s.provisionIdentity(ctx, user)
	}

	if _, err := s.storage.UpsertMembershipRole(ctx, user.ID, invitation.TenantID, invitation.Role); err != nil {
		return nil, fmt.Errorf("failed to add membership: %w", err)
	}

	if err := s.storage.MarkInvitationAccepted(ctx, invitation.ID); err != nil {
		// The row can vanish between the token lookup and the flag
		// update when a cancellation commits in between. Failing here
		// rolls back the membership upsert with the rest of the
		// request transaction.
		if errors.Is(err, storage.ErrNotFound) {
			return nil, tenant.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to mark invitation accepted: %w", err)
	}

	s.logger.Infof("invitation %s accepted by %s for tenant %s", invitation.ID, user.Email, invitation.TenantID)

	s.sendWelcomeEmail(ctx, user, invitation)

	return &AcceptInvitationResult{
		User:          user,
		Tenant:        invitation.Tenant,
		Role:          invitation.Role,
		RequiresLogin: requiresLogin,
	}, nil
}

// provisionIdentity creates the Keycloak account for an invitee that has
// never signed in, so the credential setup email reaches them before
// their first login. Failures are logged only: SyncUser links the
// identity by email on first login anyway.
func (s *Service) provisionIdentity(ctx context.Context, user *types.User) {
	rep := keycloak.UserRepresentation{Email: user.Email, Enabled: true}
	if user.FirstName != nil {
		rep.FirstName = *user.FirstName
	}
	if user.LastName != nil {
		rep.LastName = *user.LastName
	}

	keycloakID, err := s.keycloak.CreateUser(ctx, rep)
	if err != nil {
		s.logger.Warnf("failed to provision identity for %s: %v", user.Email, err)
		return
	}
	if keycloakID == "" {
		return
	}

	if _, err := s.storage.UpdateUser(ctx, user.ID, storage.UserUpdate{KeycloakID: &keycloakID}); err != nil {
		s.logger.Warnf("failed to link identity for %s: %v", user.Email, err)
		return
	}
	user.KeycloakID = &keycloakID

	if err := s.keycloak.SendPasswordResetEmail(ctx, keycloakID); err != nil {
		s.logger.Warnf("failed to send credential setup email to %s: %v", user.Email, err)
	}
}

func (s *Service) sendWelcomeEmail(ctx context.Context, user *types.User, invitation *types.Invitation) {
	welcome := mail.WelcomeEmail{ToEmail: user.Email}
	if user.FirstName != nil {
		welcome.ToName = *user.FirstName
	}
	if invitation.Tenant != nil {
		welcome.TenantName = invitation.Tenant.Name
	}

	if err := s.mailer.SendWelcomeEmail(ctx, welcome); err != nil {
		s.logger.Warnf("failed to send welcome email to %s: %v", user.Email, err)
	}
}

// ResetPassword triggers a Keycloak credential reset for the given email.
// The outcome is identical whether or not an account exists so the
// endpoint cannot be used to probe for registered addresses.
func (s *Service) ResetPassword(ctx context.Context, email string) error {
	ctx, span := s.tracer.Start(ctx, "auth.Service.ResetPassword")
	defer span.End()

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Debugf("password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	keycloakID := user.KeycloakID
	if keycloakID == nil {
		// Provisioned before first login; the identity may still exist
		// in Keycloak under the same address.
		rep, err := s.keycloak.GetUserByEmail(ctx, email)
		if err != nil {
			if !errors.Is(err, keycloak.ErrUserNotFound) {
				s.logger.Warnf("keycloak lookup failed during password reset: %v", err)
			}
			return nil
		}
		keycloakID = &rep.ID
	}

	if err := s.keycloak.SendPasswordResetEmail(ctx, *keycloakID); err != nil {
		s.logger.Warnf("failed to send password reset email: %v", err)
	}

	return nil
}

func (s *Service) Me(ctx context.Context, userID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Service.Me")
	defer span.End()

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, tenant.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
