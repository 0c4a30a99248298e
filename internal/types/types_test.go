// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"testing"
	"time"
)

func strPtr(s string) *string {
	return &s
}

func TestInvitationPredicates(t *testing.T) {
	tests := []struct {
		name            string
		accepted        bool
		expiresIn       time.Duration
		expectedExpired bool
		expectedValid   bool
		expectedPending bool
	}{
		{
			name:            "fresh invitation",
			accepted:        false,
			expiresIn:       24 * time.Hour,
			expectedExpired: false,
			expectedValid:   true,
			expectedPending: true,
		},
		{
			name:            "expired invitation",
			accepted:        false,
			expiresIn:       -time.Minute,
			expectedExpired: true,
			expectedValid:   false,
			expectedPending: true,
		},
		{
			name:            "accepted invitation",
			accepted:        true,
			expiresIn:       24 * time.Hour,
			expectedExpired: false,
			expectedValid:   false,
			expectedPending: false,
		},
		{
			name:            "accepted and expired",
			accepted:        true,
			expiresIn:       -time.Hour,
			expectedExpired: true,
			expectedValid:   false,
			expectedPending: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inv := &Invitation{
				Accepted:  tc.accepted,
				ExpiresAt: time.Now().Add(tc.expiresIn),
			}

			if got := inv.IsExpired(); got != tc.expectedExpired {
				t.Errorf("IsExpired() = %v, want %v", got, tc.expectedExpired)
			}
			if got := inv.IsValid(); got != tc.expectedValid {
				t.Errorf("IsValid() = %v, want %v", got, tc.expectedValid)
			}
			if got := inv.IsPending(); got != tc.expectedPending {
				t.Errorf("IsPending() = %v, want %v", got, tc.expectedPending)
			}
		})
	}
}

func TestInviterDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		inviter  *User
		expected string
	}{
		{
			name:     "missing inviter",
			inviter:  nil,
			expected: "Unknown",
		},
		{
			name:     "full name",
			inviter:  &User{Email: "jane@example.com", FirstName: strPtr("Jane"), LastName: strPtr("Doe")},
			expected: "Jane Doe",
		},
		{
			name:     "first name only",
			inviter:  &User{Email: "jane@example.com", FirstName: strPtr("Jane")},
			expected: "Jane",
		},
		{
			name:     "last name only",
			inviter:  &User{Email: "jane@example.com", LastName: strPtr("Doe")},
			expected: "Doe",
		},
		{
			name:     "email fallback",
			inviter:  &User{Email: "jane@example.com"},
			expected: "jane@example.com",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inv := &Invitation{Inviter: tc.inviter}
			if got := inv.InviterDisplayName(); got != tc.expected {
				t.Errorf("InviterDisplayName() = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestHoursUntilExpiration(t *testing.T) {
	inv := &Invitation{ExpiresAt: time.Now().Add(24*time.Hour + time.Minute)}
	if got := inv.HoursUntilExpiration(); got != 24 {
		t.Errorf("HoursUntilExpiration() = %d, want 24", got)
	}

	expired := &Invitation{ExpiresAt: time.Now().Add(-time.Hour)}
	if got := expired.HoursUntilExpiration(); got != 0 {
		t.Errorf("HoursUntilExpiration() = %d, want 0", got)
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleOwner, RoleAdmin, RoleMember} {
		if !r.Valid() {
			t.Errorf("expected %s to be valid", r)
		}
	}
	if Role("SUPERUSER").Valid() {
		t.Error("expected SUPERUSER to be invalid")
	}
}
