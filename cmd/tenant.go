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

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Manage tenants",
}

var tenantSlug string

var createTenantCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var created types.Tenant
		err := client.post(context.Background(), "/api/v1/tenants", map[string]string{
			"name": args[0],
			"slug": tenantSlug,
		}, &created)
		if err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		fmt.Printf("Tenant created: %s (ID: %s)\n", created.Name, created.ID)
		return nil
	},
}

var listTenantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List tenants for the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var tenants []types.Tenant
		if err := client.get(context.Background(), "/api/v1/tenants", &tenants); err != nil {
			return fmt.Errorf("failed to list tenants: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSLUG\tMY_ROLE\tCREATED_AT")
		for _, t := range tenants {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Slug, t.MyRole, t.CreatedAt)
		}
		w.Flush()
		return nil
	},
}

var getTenantCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var t types.Tenant
		if err := client.get(context.Background(), "/api/v1/tenants/"+args[0], &t); err != nil {
			return fmt.Errorf("failed to get tenant: %w", err)
		}

		fmt.Printf("ID:      %s\n", t.ID)
		fmt.Printf("Name:    %s\n", t.Name)
		fmt.Printf("Slug:    %s\n", t.Slug)
		fmt.Printf("My role: %s\n", t.MyRole)
		fmt.Printf("Created: %s\n", t.CreatedAt)
		return nil
	},
}

var deleteTenantCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		if err := client.delete(context.Background(), "/api/v1/tenants/"+args[0]); err != nil {
			return fmt.Errorf("failed to delete tenant: %w", err)
		}

		fmt.Printf("Tenant deleted: %s\n", args[0])
		return nil
	},
}

var updateTenantCmd = &cobra.Command{
	Use:   "update [id] [name]",
	Short: "Update a tenant name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()

		var updated types.Tenant
		err := client.patch(context.Background(), "/api/v1/tenants/"+args[0], map[string]string{
			"name": args[1],
		}, &updated)
		if err != nil {
			return fmt.Errorf("failed to update tenant: %w", err)
		}

		fmt.Printf("Tenant updated: %s\n", updated.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tenantCmd)
	tenantCmd.AddCommand(createTenantCmd)
	tenantCmd.AddCommand(listTenantsCmd)
	tenantCmd.AddCommand(getTenantCmd)
	tenantCmd.AddCommand(deleteTenantCmd)
	tenantCmd.AddCommand(updateTenantCmd)

	createTenantCmd.Flags().StringVar(&tenantSlug, "slug", "", "URL-friendly tenant identifier")
	_ = createTenantCmd.MarkFlagRequired("slug")
}
