// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"fmt"

	"github.com/mylegitech/api/internal/types"
)

var (
	// ErrCannotModifyOwner protects the tenant owner from role changes
	// and removal.
	ErrCannotModifyOwner = fmt.Errorf("cannot modify or remove the tenant owner")
	// ErrCannotSetOwnerRole rejects granting OWNER after tenant creation.
	ErrCannotSetOwnerRole = fmt.Errorf("cannot assign the owner role")
)

// CheckRoleChange validates a role update against the owner protection
// rules. OWNER is assigned once, at tenant creation, and never via updates.
func CheckRoleChange(current, newRole types.Role) error {
	if current == types.RoleOwner {
		return ErrCannotModifyOwner
	}
	if newRole == types.RoleOwner {
		return ErrCannotSetOwnerRole
	}
	return nil
}

// CheckRemoval validates removing a member from a tenant.
func CheckRemoval(current types.Role) error {
	if current == types.RoleOwner {
		return ErrCannotModifyOwner
	}
	return nil
}
