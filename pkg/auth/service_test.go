// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	gomock "go.uber.org/mock/gomock"

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

//go:generate mockgen -build_flags=--mod=mod -package auth -destination ./mock_interfaces.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockAdminClientInterface, *MockMailInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := NewMockStorageInterface(ctrl)
	kc := NewMockAdminClientInterface(ctrl)
	mailer := NewMockMailInterface(ctrl)
	svc := NewService(store, kc, mailer, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return svc, store, kc, mailer
}

func strPtr(s string) *string { return &s }

func TestService_SyncUser(t *testing.T) {
	ctx := context.Background()
	identity := &authentication.Identity{
		Subject:   "kc-1",
		Email:     "jane@acme.com",
		FirstName: "Jane",
		LastName:  "Doe",
	}

	t.Run("KnownSubjectNoChanges", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		existing := &types.User{
			ID:         "u-1",
			Email:      "jane@acme.com",
			KeycloakID: strPtr("kc-1"),
			FirstName:  strPtr("Janet"),
			LastName:   strPtr("Doe"),
		}
		store.EXPECT().GetUserByKeycloakID(gomock.Any(), "kc-1").Return(existing, nil)

		user, err := svc.SyncUser(ctx, identity)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if user != existing {
			t.Error("expected the stored user to be returned unchanged")
		}
	})

	t.Run("EmailChangedUpstream", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		existing := &types.User{
			ID:         "u-1",
			Email:      "old@acme.com",
			KeycloakID: strPtr("kc-1"),
			FirstName:  strPtr("Jane"),
			LastName:   strPtr("Doe"),
		}
		store.EXPECT().GetUserByKeycloakID(gomock.Any(), "kc-1").Return(existing, nil)
		store.EXPECT().UpdateUser(gomock.Any(), "u-1", storage.UserUpdate{Email: strPtr("jane@acme.com")}).
			Return(&types.User{ID: "u-1", Email: "jane@acme.com"}, nil)

		user, err := svc.SyncUser(ctx, identity)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if user.Email != "jane@acme.com" {
			t.Errorf("expected synced email, got %s", user.Email)
		}
	})

	t.Run("LinksInvitedUserByEmail", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		// Provisioned by invitation acceptance: no keycloak link, no names.
		invited := &types.User{ID: "u-2", Email: "jane@acme.com"}
		store.EXPECT().GetUserByKeycloakID(gomock.Any(), "kc-1").Return(nil, storage.ErrNotFound)
		store.EXPECT().GetUserByEmail(gomock.Any(), "jane@acme.com").Return(invited, nil)
		store.EXPECT().UpdateUser(gomock.Any(), "u-2", storage.UserUpdate{
			KeycloakID: strPtr("kc-1"),
			FirstName:  strPtr("Jane"),
			LastName:   strPtr("Doe"),
		}).Return(&types.User{ID: "u-2", Email: "jane@acme.com", KeycloakID: strPtr("kc-1")}, nil)

		user, err := svc.SyncUser(ctx, identity)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if user.KeycloakID == nil || *user.KeycloakID != "kc-1" {
			t.Error("expected user linked to keycloak")
		}
	})

	t.Run("CreatesOnFirstLogin", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		store.EXPECT().GetUserByKeycloakID(gomock.Any(), "kc-1").Return(nil, storage.ErrNotFound)
		store.EXPECT().GetUserByEmail(gomock.Any(), "jane@acme.com").Return(nil, storage.ErrNotFound)
		store.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *types.User) (*types.User, error) {
				if u.Email != "jane@acme.com" || u.KeycloakID == nil || *u.KeycloakID != "kc-1" {
					t.Errorf("unexpected new user: %+v", u)
				}
				if u.FirstName == nil || *u.FirstName != "Jane" {
					t.Errorf("expected first name from claims, got %+v", u.FirstName)
				}
				created := *u
				created.ID = "u-3"
				return &created, nil
			})

		user, err := svc.SyncUser(ctx, identity)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if user.ID != "u-3" {
			t.Errorf("expected created user, got %+v", user)
		}
	})

	t.Run("LocalNamesSurvive", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		existing := &types.User{
			ID:         "u-1",
			Email:      "jane@acme.com",
			KeycloakID: strPtr("kc-1"),
			FirstName:  strPtr("Janet"),
		}
		store.EXPECT().GetUserByKeycloakID(gomock.Any(), "kc-1").Return(existing, nil)
		// Only the missing last name is filled; the locally edited first
		// name is left alone.
		store.EXPECT().UpdateUser(gomock.Any(), "u-1", storage.UserUpdate{LastName: strPtr("Doe")}).
			Return(existing, nil)

		if _, err := svc.SyncUser(ctx, identity); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestService_AcceptInvitation(t *testing.T) {
	ctx := context.Background()

	validInvitation := func() *types.Invitation {
		return &types.Invitation{
			ID:        "inv-1",
			Email:     "new@acme.com",
			Token:     "tok-1",
			Role:      types.RoleMember,
			ExpiresAt: time.Now().Add(time.Hour),
			TenantID:  "t-1",
			Tenant:    &types.Tenant{ID: "t-1", Name: "Acme"},
		}
	}

	t.Run("NewUser", func(t *testing.T) {
		svc, store, kc, mailer := newTestService(t)

		store.EXPECT().GetInvitationByToken(gomock.Any(), "tok-1").Return(validInvitation(), nil)
		store.EXPECT().GetUserByEmail(gomock.Any(), "new@acme.com").Return(nil, storage.ErrNotFound)
		store.EXPECT().CreateUser(gomock.Any(), &types.User{Email: "new@acme.com"}).
			Return(&types.User{ID: "u-9", Email: "new@acme.com"}, nil)

		// A fresh invitee gets a Keycloak account up front so the
		// credential setup email can reach them before first login.
		kc.EXPECT().CreateUser(gomock.Any(), keycloak.UserRepresentation{Email: "new@acme.com", Enabled: true}).
			Return("kc-9", nil)
		store.EXPECT().UpdateUser(gomock.Any(), "u-9", storage.UserUpdate{KeycloakID: strPtr("kc-9")}).
			Return(&types.User{ID: "u-9", Email: "new@acme.com", KeycloakID: strPtr("kc-9")}, nil)
		kc.EXPECT().SendPasswordResetEmail(gomock.Any(), "kc-9").Return(nil)

		store.EXPECT().UpsertMembershipRole(gomock.Any(), "u-9", "t-1", types.RoleMember).
			Return(&types.Membership{UserID: "u-9", TenantID: "t-1", Role: types.RoleMember}, nil)
		store.EXPECT().MarkInvitationAccepted(gomock.Any(), "inv-1").Return(nil)
		mailer.EXPECT().SendWelcomeEmail(gomock.Any(), mail.WelcomeEmail{ToEmail: "new@acme.com", TenantName: "Acme"}).
			Return(nil)

		result, err := svc.AcceptInvitation(ctx, "tok-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !result.RequiresLogin {
			t.Error("a user without credentials yet must be told to finish registration")
		}
		if result.Tenant.Name != "Acme" || result.Role != types.RoleMember {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("NewUserIdentityProvisioningFails", func(t *testing.T) {
		svc, store, kc, mailer := newTestService(t)

		store.EXPECT().GetInvitationByToken(gomock.Any(), "tok-1").Return(validInvitation(), nil)
		store.EXPECT().GetUserByEmail(gomock.Any(), "new@acme.com").Return(nil, storage.ErrNotFound)
		store.EXPECT().CreateUser(gomock.Any(), &types.User{Email: "new@acme.com"}).
			Return(&types.User{ID: "u-9", Email: "new@acme.com"}, nil)
		kc.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return("", errors.New("keycloak down"))
		store.EXPECT().UpsertMembershipRole(gomock.Any(), "u-9", "t-1", types.RoleMember).
			Return(&types.Membership{}, nil)
		store.EXPECT().MarkInvitationAccepted(gomock.Any(), "inv-1").Return(nil)
		mailer.EXPECT().SendWelcomeEmail(gomock.Any(), gomock.Any()).Return(nil)

		// The identity provider being down must not block the acceptance;
		// the account gets linked on first login instead.
		result, err := svc.AcceptInvitation(ctx, "tok-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !result.RequiresLogin {
			t.Error("expected RequiresLogin to stay true")
		}
	})

	t.Run("ExistingLinkedUser", func(t *testing.T) {
		svc, store, _, mailer := newTestService(t)

		store.EXPECT().GetInvitationByToken(gomock.Any(), "tok-1").Return(validInvitation(), nil)
		store.EXPECT().GetUserByEmail(gomock.Any(), "new@acme.com").
			Return(&types.User{ID: "u-5", Email: "new@acme.com", KeycloakID: strPtr("kc-5")}, nil)
		store.EXPECT().UpsertMembershipRole(gomock.Any(), "u-5", "t-1", types.RoleMember).
			Return(&types.Membership{}, nil)
		store.EXPECT().MarkInvitationAccepted(gomock.Any(), "inv-1").Return(nil)
		mailer.EXPECT().SendWelcomeEmail(gomock.Any(), mail.WelcomeEmail{ToEmail: "new@acme.com", TenantName: "Acme"}).
			Return(nil)

		result, err := svc.AcceptInvitation(ctx, "tok-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.RequiresLogin {
			t.Error("a linked user can sign in directly")
		}
	})

	t.Run("Expired", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		inv := validInvitation()
		inv.ExpiresAt = time.Now().Add(-time.Minute)
		store.EXPECT().GetInvitationByToken(gomock.Any(), "tok-1").Return(inv, nil)

		if _, err := svc.AcceptInvitation(ctx, "tok-1"); !errors.Is(err, tenant.ErrInvitationExpired) {
			t.Errorf("expected ErrInvitationExpired, got %v", err)
		}
	})

	t.Run("AlreadyAccepted", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		inv := validInvitation()
		inv.Accepted = true
		store.EXPECT().GetInvitationByToken(gomock.Any(), "tok-1").Return(inv, nil)

		if _, err := svc.AcceptInvitation(ctx, "tok-1"); !errors.Is(err, tenant.ErrInvitationAlreadyAccepted) {
			t.Errorf("expected ErrInvitationAlreadyAccepted, got %v", err)
		}
	})

	t.Run("UnknownToken", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		store.EXPECT().GetInvitationByToken(gomock.Any(), "bad").Return(nil, storage.ErrNotFound)

		if _, err := svc.AcceptInvitation(ctx, "bad"); !errors.Is(err, tenant.ErrInvitationNotFound) {
			t.Errorf("expected ErrInvitationNotFound, got %v", err)
		}
	})

	t.Run("CancelledDuringAcceptance", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		// The invitation was deleted between the token lookup and the
		// flag update. The error rolls back the request transaction,
		// taking the membership upsert with it.
		store.EXPECT().GetInvitationByToken(gomock.Any(), "tok-1").Return(validInvitation(), nil)
		store.EXPECT().GetUserByEmail(gomock.Any(), "new@acme.com").
			Return(&types.User{ID: "u-5", Email: "new@acme.com", KeycloakID: strPtr("kc-5")}, nil)
		store.EXPECT().UpsertMembershipRole(gomock.Any(), "u-5", "t-1", types.RoleMember).
			Return(&types.Membership{}, nil)
		store.EXPECT().MarkInvitationAccepted(gomock.Any(), "inv-1").Return(storage.ErrNotFound)

		if _, err := svc.AcceptInvitation(ctx, "tok-1"); !errors.Is(err, tenant.ErrInvitationNotFound) {
			t.Errorf("expected ErrInvitationNotFound, got %v", err)
		}
	})
}

func TestService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("LinkedUser", func(t *testing.T) {
		svc, store, kc, _ := newTestService(t)

		store.EXPECT().GetUserByEmail(gomock.Any(), "jane@acme.com").
			Return(&types.User{ID: "u-1", Email: "jane@acme.com", KeycloakID: strPtr("kc-1")}, nil)
		kc.EXPECT().SendPasswordResetEmail(gomock.Any(), "kc-1").Return(nil)

		if err := svc.ResetPassword(ctx, "jane@acme.com"); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		store.EXPECT().GetUserByEmail(gomock.Any(), "nobody@acme.com").Return(nil, storage.ErrNotFound)

		// No identity provider calls; the caller must not be able to
		// tell the difference from a successful reset.
		if err := svc.ResetPassword(ctx, "nobody@acme.com"); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("UnlinkedUserWithIdentity", func(t *testing.T) {
		svc, store, kc, _ := newTestService(t)

		store.EXPECT().GetUserByEmail(gomock.Any(), "jane@acme.com").
			Return(&types.User{ID: "u-1", Email: "jane@acme.com"}, nil)
		kc.EXPECT().GetUserByEmail(gomock.Any(), "jane@acme.com").
			Return(&keycloak.UserRepresentation{ID: "kc-7", Email: "jane@acme.com"}, nil)
		kc.EXPECT().SendPasswordResetEmail(gomock.Any(), "kc-7").Return(nil)

		if err := svc.ResetPassword(ctx, "jane@acme.com"); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("UnlinkedUserWithoutIdentity", func(t *testing.T) {
		svc, store, kc, _ := newTestService(t)

		store.EXPECT().GetUserByEmail(gomock.Any(), "jane@acme.com").
			Return(&types.User{ID: "u-1", Email: "jane@acme.com"}, nil)
		kc.EXPECT().GetUserByEmail(gomock.Any(), "jane@acme.com").
			Return(nil, keycloak.ErrUserNotFound)

		if err := svc.ResetPassword(ctx, "jane@acme.com"); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}
