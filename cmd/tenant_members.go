// Copyright 2026 MyLegitech SAS
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mylegitech/api/internal/types"
)

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Manage tenant members",
}

var listMembersCmd = &cobra.Command{
	Use:   "list [tenant-id]",
	Short: "List members of a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var members []types.Membership
		if err := client.get(context.Background(), "/api/v1/tenants/"+args[0]+"/members", &members); err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER_ID\tEMAIL\tROLE\tJOINED_AT")
		for _, m := range members {
			email := ""
			if m.User != nil {
				email = m.User.Email
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.UserID, email, m.Role, m.CreatedAt)
		}
		w.Flush()
		return nil
	},
}

var inviteMemberCmd = &cobra.Command{
	Use:   "invite [tenant-id] [email] [role]",
	Short: "Invite a user to a tenant",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var invitation types.Invitation
		err := client.post(context.Background(), "/api/v1/tenants/"+args[0]+"/invitations", map[string]string{
			"email": args[1],
			"role":  args[2],
		}, &invitation)
		if err != nil {
			return fmt.Errorf("failed to invite user: %w", err)
		}

		fmt.Printf("User invited: %s\n", invitation.Email)
		fmt.Printf("Role: %s\n", invitation.Role)
		fmt.Printf("Expires at: %s\n", invitation.ExpiresAt)
		return nil
	},
}

var updateMemberCmd = &cobra.Command{
	Use:   "update [tenant-id] [user-id] [role]",
	Short: "Update a member's role",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var membership types.Membership
		err := client.patch(context.Background(), "/api/v1/tenants/"+args[0]+"/members/"+args[1], map[string]string{
			"role": args[2],
		}, &membership)
		if err != nil {
			return fmt.Errorf("failed to update member: %w", err)
		}

		fmt.Printf("Member updated: %s\n", membership.UserID)
		fmt.Printf("New Role: %s\n", membership.Role)
		return nil
	},
}

var removeMemberCmd = &cobra.Command{
	Use:   "remove [tenant-id] [user-id]",
	Short: "Remove a member from a tenant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		if err := client.delete(context.Background(), "/api/v1/tenants/"+args[0]+"/members/"+args[1]); err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}

		fmt.Printf("Member removed: %s\n", args[1])
		return nil
	},
}

func init() {
	tenantCmd.AddCommand(membersCmd)
	membersCmd.AddCommand(listMembersCmd)
	membersCmd.AddCommand(inviteMemberCmd)
	membersCmd.AddCommand(updateMemberCmd)
	membersCmd.AddCommand(removeMemberCmd)
}
