// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package user

import (
	"context"
	"errors"
	"testing"

	gomock "go.uber.org/mock/gomock"

	"github.com/mylegitech/api/internal/authorization"
	"github.com/mylegitech/api/internal/keycloak"
	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/storage"
	"github.com/mylegitech/api/internal/tracing"
	"github.com/mylegitech/api/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package user -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package user -destination ./mock_keycloak.go -source=../../internal/keycloak/interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *authorization.MockAuthorizerInterface, *MockAdminClientInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := NewMockStorageInterface(ctrl)
	authz := authorization.NewMockAuthorizerInterface(ctrl)
	kc := NewMockAdminClientInterface(ctrl)

	svc := NewService(store, authz, kc, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return svc, store, authz, kc
}

func strPtr(s string) *string { return &s }

func TestService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("SyncsToKeycloak", func(t *testing.T) {
		svc, store, _, kc := newTestService(t)

		update := ProfileUpdate{FirstName: strPtr("Jane")}
		store.EXPECT().UpdateUser(gomock.Any(), "u-1", storage.UserUpdate{FirstName: strPtr("Jane")}).
			Return(&types.User{ID: "u-1", Email: "jane@acme.com", KeycloakID: strPtr("kc-1"), FirstName: strPtr("Jane")}, nil)
		kc.EXPECT().UpdateUser(gomock.Any(), "kc-1", keycloak.UserUpdate{FirstName: strPtr("Jane")}).Return(nil)

		user, err := svc.UpdateProfile(ctx, "u-1", update)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if user.FirstName == nil || *user.FirstName != "Jane" {
			t.Errorf("expected updated first name, got %+v", user.FirstName)
		}
	})

	t.Run("KeycloakFailureIsNotFatal", func(t *testing.T) {
		svc, store, _, kc := newTestService(t)

		store.EXPECT().UpdateUser(gomock.Any(), "u-1", gomock.Any()).
			Return(&types.User{ID: "u-1", KeycloakID: strPtr("kc-1")}, nil)
		kc.EXPECT().UpdateUser(gomock.Any(), "kc-1", gomock.Any()).Return(errors.New("keycloak down"))

		if _, err := svc.UpdateProfile(ctx, "u-1", ProfileUpdate{FirstName: strPtr("Jane")}); err != nil {
			t.Errorf("expected keycloak failure to be swallowed, got %v", err)
		}
	})

	t.Run("UnlinkedUserSkipsKeycloak", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		store.EXPECT().UpdateUser(gomock.Any(), "u-1", gomock.Any()).
			Return(&types.User{ID: "u-1"}, nil)

		if _, err := svc.UpdateProfile(ctx, "u-1", ProfileUpdate{FirstName: strPtr("Jane")}); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		store.EXPECT().UpdateUser(gomock.Any(), "u-1", gomock.Any()).Return(nil, storage.ErrDuplicateKey)

		if _, err := svc.UpdateProfile(ctx, "u-1", ProfileUpdate{Email: strPtr("taken@acme.com")}); !errors.Is(err, ErrEmailAlreadyTaken) {
			t.Errorf("expected ErrEmailAlreadyTaken, got %v", err)
		}
	})
}

func TestService_SwitchTenant(t *testing.T) {
	ctx := context.Background()

	t.Run("Member", func(t *testing.T) {
		svc, store, authz, _ := newTestService(t)

		authz.EXPECT().CheckTenantAccess(gomock.Any(), "u-1", "t-1").Return(&types.Membership{Role: types.RoleAdmin}, nil)
		store.EXPECT().GetTenantByID(gomock.Any(), "t-1").Return(&types.Tenant{ID: "t-1", Name: "Acme"}, nil)

		tenant, err := svc.SwitchTenant(ctx, "u-1", "t-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if tenant.MyRole != types.RoleAdmin {
			t.Errorf("expected role %s, got %s", types.RoleAdmin, tenant.MyRole)
		}
	})

	t.Run("NotAMember", func(t *testing.T) {
		svc, _, authz, _ := newTestService(t)

		authz.EXPECT().CheckTenantAccess(gomock.Any(), "u-1", "t-2").Return(nil, authorization.ErrTenantAccessDenied)

		if _, err := svc.SwitchTenant(ctx, "u-1", "t-2"); !errors.Is(err, authorization.ErrTenantAccessDenied) {
			t.Errorf("expected ErrTenantAccessDenied, got %v", err)
		}
	})
}

func TestService_DeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("LinkedUser", func(t *testing.T) {
		svc, store, _, kc := newTestService(t)

		store.EXPECT().GetUserByID(gomock.Any(), "u-1").
			Return(&types.User{ID: "u-1", Email: "jane@acme.com", KeycloakID: strPtr("kc-1")}, nil)
		store.EXPECT().ListTenantsByUserID(gomock.Any(), "u-1").
			Return([]*types.Tenant{{ID: "t-1", MyRole: types.RoleMember}}, nil)
		kc.EXPECT().DeleteUser(gomock.Any(), "kc-1").Return(nil)
		store.EXPECT().DeleteUser(gomock.Any(), "u-1").Return(nil)

		if err := svc.DeleteAccount(ctx, "u-1"); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("OwnerBlocked", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		store.EXPECT().GetUserByID(gomock.Any(), "u-1").
			Return(&types.User{ID: "u-1", Email: "jane@acme.com"}, nil)
		store.EXPECT().ListTenantsByUserID(gomock.Any(), "u-1").
			Return([]*types.Tenant{{ID: "t-1", MyRole: types.RoleOwner}}, nil)

		if err := svc.DeleteAccount(ctx, "u-1"); !errors.Is(err, ErrOwnedTenants) {
			t.Errorf("expected ErrOwnedTenants, got %v", err)
		}
	})

	t.Run("UnlinkedUser", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		store.EXPECT().GetUserByID(gomock.Any(), "u-1").
			Return(&types.User{ID: "u-1", Email: "jane@acme.com"}, nil)
		store.EXPECT().ListTenantsByUserID(gomock.Any(), "u-1").Return(nil, nil)
		store.EXPECT().DeleteUser(gomock.Any(), "u-1").Return(nil)

		if err := svc.DeleteAccount(ctx, "u-1"); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("IdentityAlreadyGone", func(t *testing.T) {
		svc, store, _, kc := newTestService(t)

		store.EXPECT().GetUserByID(gomock.Any(), "u-1").
			Return(&types.User{ID: "u-1", Email: "jane@acme.com", KeycloakID: strPtr("kc-1")}, nil)
		store.EXPECT().ListTenantsByUserID(gomock.Any(), "u-1").Return(nil, nil)
		kc.EXPECT().DeleteUser(gomock.Any(), "kc-1").Return(keycloak.ErrUserNotFound)
		store.EXPECT().DeleteUser(gomock.Any(), "u-1").Return(nil)

		if err := svc.DeleteAccount(ctx, "u-1"); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}
