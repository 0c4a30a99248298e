// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package authorization

import "github.com/mylegitech/api/internal/types"

type Operation string

const (
	OpTenantView   Operation = "tenant:view"
	OpTenantUpdate Operation = "tenant:update"
	OpTenantDelete Operation = "tenant:delete"

	OpMemberList       Operation = "member:list"
	OpMemberAdd        Operation = "member:add"
	OpMemberUpdateRole Operation = "member:update_role"
	OpMemberRemove     Operation = "member:remove"

	OpInvitationCreate Operation = "invitation:create"
	OpInvitationList   Operation = "invitation:list"
	OpInvitationCancel Operation = "invitation:cancel"

	OpItemView   Operation = "item:view"
	OpItemCreate Operation = "item:create"
	OpItemUpdate Operation = "item:update"
	OpItemDelete Operation = "item:delete"

	OpDocumentSend Operation = "document:send"
)

var adminAndAbove = []types.Role{types.RoleOwner, types.RoleAdmin}
var allRoles = []types.Role{types.RoleOwner, types.RoleAdmin, types.RoleMember}

// policy maps each operation to the roles allowed to perform it. Any
// operation missing from the table is denied outright.
var policy = map[Operation][]types.Role{
	OpTenantView:   allRoles,
	OpTenantUpdate: adminAndAbove,
	OpTenantDelete: {types.RoleOwner},

	OpMemberList:       allRoles,
	OpMemberAdd:        adminAndAbove,
	OpMemberUpdateRole: adminAndAbove,
	OpMemberRemove:     adminAndAbove,

	OpInvitationCreate: adminAndAbove,
	OpInvitationList:   adminAndAbove,
	OpInvitationCancel: adminAndAbove,

	OpItemView:   allRoles,
	OpItemCreate: allRoles,
	OpItemUpdate: allRoles,
	OpItemDelete: adminAndAbove,

	OpDocumentSend: adminAndAbove,
}
