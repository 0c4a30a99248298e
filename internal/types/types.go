// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"time"
)

// Role is the membership role of a user inside a tenant.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// MyRole and MemberCount are annotations computed per caller, not
	// persisted columns.
	MyRole      Role `json:"myRole,omitempty"`
	MemberCount int  `json:"memberCount,omitempty"`
}

type Membership struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	TenantID  string    `json:"tenantId"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User *User `json:"user,omitempty"`
}

type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	KeycloakID *string   `json:"keycloakId,omitempty"`
	FirstName  *string   `json:"firstName,omitempty"`
	LastName   *string   `json:"lastName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Invitation struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
	Accepted  bool      `json:"accepted"`
	TenantID  string    `json:"tenantId"`
	InvitedBy string    `json:"invitedBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Tenant  *Tenant `json:"tenant,omitempty"`
	Inviter *User   `json:"inviter,omitempty"`
}

// IsExpired reports whether the invitation's lifetime has elapsed.
// Expiration is a computed predicate, never a stored flag.
func (i *Invitation) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}

// IsValid reports whether the invitation can still be accepted.
func (i *Invitation) IsValid() bool {
	return !i.Accepted && !i.IsExpired()
}

// IsPending reports whether the invitation has not been accepted,
// regardless of expiration.
func (i *Invitation) IsPending() bool {
	return !i.Accepted
}

// HoursUntilExpiration returns the whole hours left before expiry, floored
// at zero.
func (i *Invitation) HoursUntilExpiration() int {
	d := time.Until(i.ExpiresAt)
	if d < 0 {
		return 0
	}
	return int(d.Hours())
}

// InviterDisplayName renders the inviter for email templates: full name
// when both parts exist, a single name part otherwise, then the inviter's
// email, then "Unknown" when the inviter record is missing.
func (i *Invitation) InviterDisplayName() string {
	if i.Inviter == nil {
		return "Unknown"
	}

	first := ""
	if i.Inviter.FirstName != nil {
		first = *i.Inviter.FirstName
	}
	last := ""
	if i.Inviter.LastName != nil {
		last = *i.Inviter.LastName
	}

	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	case last != "":
		return last
	}

	return i.Inviter.Email
}

type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	TenantID    string    `json:"tenantId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BelongsToTenant reports whether the item is scoped to the given tenant.
func (it *Item) BelongsToTenant(tenantID string) bool {
	return it.TenantID == tenantID
}
