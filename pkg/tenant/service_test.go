// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package tenant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	gomock "go.uber.org/mock/gomock"

	"github.com/mylegitech/api/internal/authorization"
	"github.com/mylegitech/api/internal/logging"
	"github.com/mylegitech/api/internal/mail"
	"github.com/mylegitech/api/internal/monitoring"
	"github.com/mylegitech/api/internal/storage"
	"github.com/mylegitech/api/internal/tracing"
	"github.com/mylegitech/api/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_mail.go -source=../../internal/mail/interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *authorization.MockAuthorizerInterface, *MockMailInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := NewMockStorageInterface(ctrl)
	authz := authorization.NewMockAuthorizerInterface(ctrl)
	mailer := NewMockMailInterface(ctrl)

	svc := NewService(
		store,
		authz,
		mailer,
		"https://app.example.com/invitations",
		24*time.Hour,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	return svc, store, authz, mailer
}

func TestService_CreateTenant(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		store.EXPECT().GetTenantBySlug(gomock.Any(), "acme").Return(nil, storage.ErrNotFound)
		store.EXPECT().CreateTenant(gomock.Any(), "Acme", "acme", "user-1").Return(&types.Tenant{ID: "t-1", Name: "Acme", Slug: "acme"}, nil)

		tenant, err := svc.CreateTenant(ctx, "user-1", "Acme", "acme")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if tenant.MyRole != types.RoleOwner {
			t.Errorf("expected creator role %s, got %s", types.RoleOwner, tenant.MyRole)
		}
	})

	t.Run("SlugTaken", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		store.EXPECT().GetTenantBySlug(gomock.Any(), "acme").Return(&types.Tenant{ID: "other"}, nil)

		if _, err := svc.CreateTenant(ctx, "user-1", "Acme", "acme"); !errors.Is(err, ErrSlugAlreadyExists) {
			t.Errorf("expected ErrSlugAlreadyExists, got %v", err)
		}
	})

	t.Run("SlugRace", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		store.EXPECT().GetTenantBySlug(gomock.Any(), "acme").Return(nil, storage.ErrNotFound)
		store.EXPECT().CreateTenant(gomock.Any(), "Acme", "acme", "user-1").Return(nil, storage.ErrDuplicateKey)

		if _, err := svc.CreateTenant(ctx, "user-1", "Acme", "acme"); !errors.Is(err, ErrSlugAlreadyExists) {
			t.Errorf("expected ErrSlugAlreadyExists, got %v", err)
		}
	})
}

func TestService_GetTenant(t *testing.T) {
	ctx := context.Background()

	t.Run("AnnotatesCallerRole", func(t *testing.T) {
		svc, store, authz, _ := newTestService(t)

		store.EXPECT().GetTenantByID(gomock.Any(), "t-1").Return(&types.Tenant{ID: "t-1", Name: "Acme"}, nil)
		authz.EXPECT().Authorize(gomock.Any(), "user-1", "t-1", authorization.OpTenantView).Return(&types.Membership{Role: types.RoleAdmin}, nil)

		tenant, err := svc.GetTenant(ctx, "user-1", "t-1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if tenant.MyRole != types.RoleAdmin {
			t.Errorf("expected role %s, got %s", types.RoleAdmin, tenant.MyRole)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		store.EXPECT().GetTenantByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)

		if _, err := svc.GetTenant(ctx, "user-1", "missing"); !errors.Is(err, ErrTenantNotFound) {
			t.Errorf("expected ErrTenantNotFound, got %v", err)
		}
	})

	t.Run("AccessDenied", func(t *testing.T) {
		svc, store, authz, _ := newTestService(t)

		store.EXPECT().GetTenantByID(gomock.Any(), "t-1").Return(&types.Tenant{ID: "t-1"}, nil)
		authz.EXPECT().Authorize(gomock.Any(), "outsider", "t-1", authorization.OpTenantView).Return(nil, authorization.ErrTenantAccessDenied)

		if _, err := svc.GetTenant(ctx, "outsider", "t-1"); !errors.Is(err, authorization.ErrTenantAccessDenied) {
			t.Errorf("expected ErrTenantAccessDenied, got %v", err)
		}
	})
}

func TestService_UpdateTenant_SlugConflict(t *testing.T) {
	ctx := context.Background()
	svc, store, authz, _ := newTestService(t)

	newSlug := "taken"
	store.EXPECT().GetTenantByID(gomock.Any(), "t-1").Return(&types.Tenant{ID: "t-1", Slug: "acme"}, nil)
	authz.EXPECT().Authorize(gomock.Any(), "user-1", "t-1", authorization.OpTenantUpdate).Return(&types.Membership{Role: types.RoleOwner}, nil)
	store.EXPECT().GetTenantBySlug(gomock.Any(), "taken").Return(&types.Tenant{ID: "other"}, nil)

	if _, err := svc.UpdateTenant(ctx, "user-1", "t-1", nil, &newSlug); !errors.Is(err, ErrSlugAlreadyExists) {
		t.Errorf("expected ErrSlugAlreadyExists, got %v", err)
	}
}

func TestService_AddMember(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, store, authz, _ := newTestService(t)

		authz.EXPECT().Authorize(gomock.Any(), "admin-1", "t-1", authorization.OpMemberAdd).Return(&types.Membership{Role: types.RoleAdmin}, nil)
		store.EXPECT().GetUserByID(gomock.Any(), "user-2").Return(&types.User{ID: "user-2"}, nil)
		store.EXPECT().GetMembership(gomock.Any(), "user-2", "t-1").Return(nil, storage.ErrNotFound)
		store.EXPECT().AddMember(gomock.Any(), "user-2", "t-1", types.RoleMember).Return(&types.Membership{UserID: "user-2", TenantID: "t-1", Role: types.RoleMember}, nil)

		member, err := svc.AddMember(ctx, "admin-1", "t-1", "user-2", types.RoleMember)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if member.Role != types.RoleMember {
			t.Errorf("expected role %s, got %s", types.RoleMember, member.Role)
		}
	})

	t.Run("AlreadyInTenant", func(t *testing.T) {
		svc, store, authz, _ := newTestService(t)

		authz.EXPECT().Authorize(gomock.Any(), "admin-1", "t-1", authorization.OpMemberAdd).Return(&types.Membership{Role: types.RoleAdmin}, nil)
		store.EXPECT().GetUserByID(gomock.Any(), "user-2").Return(&types.User{ID: "user-2"}, nil)
		store.EXPECT().GetMembership(gomock.Any(), "user-2", "t-1").Return(&types.Membership{}, nil)

		if _, err := svc.AddMember(ctx, "admin-1", "t-1", "user-2", types.RoleMember); !errors.Is(err, ErrUserAlreadyInTenant) {
			t.Errorf("expected ErrUserAlreadyInTenant, got %v", err)
		}
	})

	t.Run("UnknownUser", func(t *testing.T) {
		svc, store, authz, _ := newTestService(t)

		authz.EXPECT().Authorize(gomock.Any(), "admin-1", "t-1", authorization.OpMemberAdd).Return(&types.Membership{Role: types.RoleAdmin}, nil)
		store.EXPECT().GetUserByID(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)

		if _, err := svc.AddMember(ctx, "admin-1", "t-1", "ghost", types.RoleMember); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestService_UpdateMemberRole(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, store, authz, _ := newTestService(t)

		authz.EXPECT().Authorize(gomock.Any(), "admin-1", "t-1", authorization.OpMemberUpdateRole).Return(&types.Membership{Role: types.RoleAdmin}, nil)
		store.EXPECT().GetMembership(gomock.Any(), "user-2", "t-1").Return(&types.Membership{Role: types.RoleMember}, nil)
		store.EXPECT().UpdateMemberRole(gomock.Any(), "user-2", "t-1", types.RoleAdmin).Return(&types.Membership{UserID: "user-2", Role: types.RoleAdmin}, nil)

		member, err := svc.UpdateMemberRole(ctx, "admin-1", "t-1", "user-2", types.RoleAdmin)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if member.Role != types.RoleAdmin {
			t.Errorf("expected role %s, got %s", types.RoleAdmin, member.Role)
		}
	})

	t.Run("CannotDemoteOwner", func(t *testing.T) {
		svc, store, authz, _ := newTestService(t)

		authz.EXPECT().Authorize(gomock.Any(), "admin-1", "t-1", authorization.OpMemberUpdateRole).Return(&types.Membership{Role: types.RoleAdmin}, nil)
		store.EXPECT().GetMembership(gomock.Any(), "owner-1", "t-1").Return(&types.Membership{Role: types.RoleOwner}, nil)

		if _, err := svc.UpdateMemberRole(ctx, "admin-1", "t-1", "owner-1", types.RoleMember); !errors.Is(err, authorization.ErrCannotModifyOwner) {
			t.Errorf("expected ErrCannotModifyOwner, got %v", err)
		}
	})

	t.Run("CannotPromoteToOwner", func(t *testing.T) {
		svc, store, authz, _ := newTestService(t)

		authz.EXPECT().Authorize(gomock.Any(), "admin-1", "t-1", authorization.OpMemberUpdateRole).Return(&types.Membership{Role: types.RoleAdmin}, nil)
		store.EXPECT().GetMembership(gomock.Any(), "user-2", "t-1").Return(&types.Membership{Role: types.RoleMember}, nil)

		if _, err := svc.UpdateMemberRole(ctx, "admin-1", "t-1", "user-2", types.RoleOwner); !errors.Is(err, authorization.ErrCannotSetOwnerRole) {
			t.Errorf("expected ErrCannotSetOwnerRole, got %v", err)
		}
	})

	t.Run("NotInTenant", func(t *testing.T) {
		svc, store, authz, _ := newTestService(t)

		authz.EXPECT().Authorize(gomock.Any(), "admin-1", "t-1", authorization.OpMemberUpdateRole).Return(&types.Membership{Role: types.RoleAdmin}, nil)
		store.EXPECT().GetMembership(gomock.Any(), "user-2", "t-1").Return(nil, storage.ErrNotFound)

		if _, err := svc.UpdateMemberRole(ctx, "admin-1", "t-1", "user-2", types.RoleAdmin); !errors.Is(err, ErrUserNotInTenant) {
			t.Errorf("expected ErrUserNotInTenant, got %v", err)
		}
	})
}

func TestService_RemoveMember(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, store, authz, _ := newTestService(t)

		authz.EXPECT().Authorize(gomock.Any(), "admin-1", "t-1", authorization.OpMemberRemove).Return(&types.Membership{Role: types.RoleAdmin}, nil)
		store.EXPECT().GetMembership(gomock.Any(), "user-2", "t-1").Return(&types.Membership{Role: types.RoleMember}, nil)
		store.EXPECT().RemoveMember(gomock.Any(), "user-2", "t-1").Return(nil)

		if err := svc.RemoveMember(ctx, "admin-1", "t-1", "user-2"); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("CannotRemoveOwner", func(t *testing.T) {
		svc, store, authz, _ := newTestService(t)

		authz.EXPECT().Authorize(gomock.Any(), "admin-1", "t-1", authorization.OpMemberRemove).Return(&types.Membership{Role: types.RoleAdmin}, nil)
		store.EXPECT().GetMembership(gomock.Any(), "owner-1", "t-1").Return(&types.Membership{Role: types.RoleOwner}, nil)

		if err := svc.RemoveMember(ctx, "admin-1", "t-1", "owner-1"); !errors.Is(err, authorization.ErrCannotModifyOwner) {
			t.Errorf("expected ErrCannotModifyOwner, got %v", err)
		}
	})
}

func TestService_CreateInvitation(t *testing.T) {
	ctx := context.Background()
	inviter := &types.User{ID: "admin-1", Email: "admin@acme.com"}

	t.Run("Success", func(t *testing.T) {
		svc, store, authz, mailer := newTestService(t)

		authz.EXPECT().Authorize(gomock.Any(), "admin-1", "t-1", authorization.OpInvitationCreate).Return(&types.Membership{Role: types.RoleAdmin}, nil)
		store.EXPECT().GetTenantByID(gomock.Any(), "t-1").Return(&types.Tenant{ID: "t-1", Name: "Acme"}, nil)
		store.EXPECT().GetUserByEmail(gomock.Any(), "new@acme.com").Return(nil, storage.ErrNotFound)
		store.EXPECT().GetPendingInvitationByEmailAndTenant(gomock.Any(), "new@acme.com", "t-1").Return(nil, storage.ErrNotFound)

		var token string
		store.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv *types.Invitation) (*types.Invitation, error) {
				if inv.Email != "new@acme.com" || inv.Role != types.RoleMember || inv.TenantID != "t-1" {
					t.Errorf("unexpected invitation payload: %+v", inv)
				}
				if inv.Token == "" {
					t.Error("expected a generated token")
				}
				if time.Until(inv.ExpiresAt) <= 0 {
					t.Error("expected a future expiry")
				}
				token = inv.Token
				stored := *inv
				stored.ID = "inv-1"
				stored.Inviter = inviter
				return &stored, nil
			})
		mailer.EXPECT().SendInvitationEmail(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, email mail.InvitationEmail) error {
				if email.ToEmail != "new@acme.com" || email.TenantName != "Acme" {
					t.Errorf("unexpected email payload: %+v", email)
				}
				if !strings.HasPrefix(email.InvitationLink, "https://app.example.com/invitations?token=") {
					t.Errorf("unexpected invitation link %q", email.InvitationLink)
				}
				if !strings.HasSuffix(email.InvitationLink, token) {
					t.Errorf("link %q does not carry token %q", email.InvitationLink, token)
				}
				return nil
			})

		invitation, err := svc.CreateInvitation(ctx, "admin-1", "t-1", "new@acme.com", "")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if invitation.ID != "inv-1" {
			t.Errorf("expected stored invitation, got %+v", invitation)
		}
	})

	t.Run("ExistingMember", func(t *testing.T) {
		svc, store, authz, _ := newTestService(t)

		authz.EXPECT().Authorize(gomock.Any(), "admin-1", "t-1", authorization.OpInvitationCreate).Return(&types.Membership{Role: types.RoleAdmin}, nil)
		store.EXPECT().GetTenantByID(gomock.Any(), "t-1").Return(&types.Tenant{ID: "t-1", Name: "Acme"}, nil)
		store.EXPECT().GetUserByEmail(gomock.Any(), "member@acme.com").Return(&types.User{ID: "user-2"}, nil)
		store.EXPECT().GetMembership(gomock.Any(), "user-2", "t-1").Return(&types.Membership{}, nil)

		if _, err := svc.CreateInvitation(ctx, "admin-1", "t-1", "member@acme.com", types.RoleMember); !errors.Is(err, ErrUserAlreadyMember) {
			t.Errorf("expected ErrUserAlreadyMember, got %v", err)
		}
	})

	t.Run("PendingInvitationExists", func(t *testing.T) {
		svc, store, authz, _ := newTestService(t)

		authz.EXPECT().Authorize(gomock.Any(), "admin-1", "t-1", authorization.OpInvitationCreate).Return(&types.Membership{Role: types.RoleAdmin}, nil)
		store.EXPECT().GetTenantByID(gomock.Any(), "t-1").Return(&types.Tenant{ID: "t-1", Name: "Acme"}, nil)
		store.EXPECT().GetUserByEmail(gomock.Any(), "new@acme.com").Return(nil, storage.ErrNotFound)
		store.EXPECT().GetPendingInvitationByEmailAndTenant(gomock.Any(), "new@acme.com", "t-1").Return(&types.Invitation{ID: "inv-0"}, nil)

		if _, err := svc.CreateInvitation(ctx, "admin-1", "t-1", "new@acme.com", types.RoleMember); !errors.Is(err, ErrPendingInvitationExists) {
			t.Errorf("expected ErrPendingInvitationExists, got %v", err)
		}
	})

	t.Run("MailFailureRollsBack", func(t *testing.T) {
		svc, store, authz, mailer := newTestService(t)

		authz.EXPECT().Authorize(gomock.Any(), "admin-1", "t-1", authorization.OpInvitationCreate).Return(&types.Membership{Role: types.RoleAdmin}, nil)
		store.EXPECT().GetTenantByID(gomock.Any(), "t-1").Return(&types.Tenant{ID: "t-1", Name: "Acme"}, nil)
		store.EXPECT().GetUserByEmail(gomock.Any(), "new@acme.com").Return(nil, storage.ErrNotFound)
		store.EXPECT().GetPendingInvitationByEmailAndTenant(gomock.Any(), "new@acme.com", "t-1").Return(nil, storage.ErrNotFound)
		store.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv *types.Invitation) (*types.Invitation, error) {
				stored := *inv
				stored.ID = "inv-1"
				stored.Inviter = inviter
				return &stored, nil
			})
		mailer.EXPECT().SendInvitationEmail(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
		store.EXPECT().DeleteInvitation(gomock.Any(), "inv-1").Return(nil)

		if _, err := svc.CreateInvitation(ctx, "admin-1", "t-1", "new@acme.com", types.RoleMember); !errors.Is(err, ErrInvitationSendFailed) {
			t.Errorf("expected ErrInvitationSendFailed, got %v", err)
		}
	})
}

func TestService_CancelInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, store, authz, _ := newTestService(t)

		authz.EXPECT().Authorize(gomock.Any(), "admin-1", "t-1", authorization.OpInvitationCancel).Return(&types.Membership{Role: types.RoleAdmin}, nil)
		store.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").Return(&types.Invitation{ID: "inv-1", TenantID: "t-1"}, nil)
		store.EXPECT().DeleteInvitation(gomock.Any(), "inv-1").Return(nil)

		if err := svc.CancelInvitation(ctx, "admin-1", "t-1", "inv-1"); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("WrongTenant", func(t *testing.T) {
		svc, store, authz, _ := newTestService(t)

		authz.EXPECT().Authorize(gomock.Any(), "admin-1", "t-1", authorization.OpInvitationCancel).Return(&types.Membership{Role: types.RoleAdmin}, nil)
		store.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").Return(&types.Invitation{ID: "inv-1", TenantID: "t-2"}, nil)

		if err := svc.CancelInvitation(ctx, "admin-1", "t-1", "inv-1"); !errors.Is(err, ErrInvitationNotBelongToTenant) {
			t.Errorf("expected ErrInvitationNotBelongToTenant, got %v", err)
		}
	})

	t.Run("AlreadyAccepted", func(t *testing.T) {
		svc, store, authz, _ := newTestService(t)

		authz.EXPECT().Authorize(gomock.Any(), "admin-1", "t-1", authorization.OpInvitationCancel).Return(&types.Membership{Role: types.RoleAdmin}, nil)
		store.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").Return(&types.Invitation{ID: "inv-1", TenantID: "t-1", Accepted: true}, nil)

		if err := svc.CancelInvitation(ctx, "admin-1", "t-1", "inv-1"); !errors.Is(err, ErrCannotCancelAccepted) {
			t.Errorf("expected ErrCannotCancelAccepted, got %v", err)
		}
	})

	t.Run("ConcurrentCancel", func(t *testing.T) {
		svc, store, authz, _ := newTestService(t)

		// Another admin deleted the invitation between the lookup and
		// the delete. The loser gets not-found, not a server error.
		authz.EXPECT().Authorize(gomock.Any(), "admin-1", "t-1", authorization.OpInvitationCancel).Return(&types.Membership{Role: types.RoleAdmin}, nil)
		store.EXPECT().GetInvitationByID(gomock.Any(), "inv-1").Return(&types.Invitation{ID: "inv-1", TenantID: "t-1"}, nil)
		store.EXPECT().DeleteInvitation(gomock.Any(), "inv-1").Return(storage.ErrNotFound)

		if err := svc.CancelInvitation(ctx, "admin-1", "t-1", "inv-1"); !errors.Is(err, ErrInvitationNotFound) {
			t.Errorf("expected ErrInvitationNotFound, got %v", err)
		}
	})
}

func TestService_ValidateInvitation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		invitation *types.Invitation
		storageErr error
		wantErr    error
	}{
		{
			name:       "Valid",
			invitation: &types.Invitation{ID: "inv-1", ExpiresAt: time.Now().Add(time.Hour)},
		},
		{
			name:       "NotFound",
			storageErr: storage.ErrNotFound,
			wantErr:    ErrInvitationNotFound,
		},
		{
			name:       "AlreadyAccepted",
			invitation: &types.Invitation{ID: "inv-1", Accepted: true, ExpiresAt: time.Now().Add(time.Hour)},
			wantErr:    ErrInvitationAlreadyAccepted,
		},
		{
			name:       "Expired",
			invitation: &types.Invitation{ID: "inv-1", ExpiresAt: time.Now().Add(-time.Hour)},
			wantErr:    ErrInvitationExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, _, _ := newTestService(t)

			store.EXPECT().GetInvitationByToken(gomock.Any(), "tok").Return(tt.invitation, tt.storageErr)

			got, err := svc.ValidateInvitation(ctx, "tok")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got.ID != tt.invitation.ID {
				t.Errorf("expected invitation %s, got %s", tt.invitation.ID, got.ID)
			}
		})
	}
}
