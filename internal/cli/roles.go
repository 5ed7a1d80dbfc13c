package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/storefront/internal/api"
	"github.com/rshade/storefront/internal/store"
)

func newRolesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "roles", Aliases: []string{"role"}, Short: "Manage user roles"}
	cmd.AddCommand(newRolesListCmd(), newRolesCreateCmd(), newRolesDeleteCmd())
	return cmd
}

func newRoleCollection() *store.Collection[api.Role] {
	return store.NewCollection("roles", func(r api.Role) int { return r.ID })
}

func newRolesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List roles and their permissions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient(cmd)
			if err != nil {
				return err
			}
			if err = requireToken(client); err != nil {
				return err
			}
			roles := newRoleCollection()
			if err = roles.Fetch(cmd.Context(), client.Roles); err != nil {
				return fmt.Errorf("listing roles: %w", err)
			}
			return renderRoles(cmd, roles.Snapshot().Items)
		},
	}
}

func newRolesCreateCmd() *cobra.Command {
	var permissions []string

	cmd := &cobra.Command{
		Use:     "create <name>",
		Short:   "Create a role",
		Example: `  storefront roles create vendor --permissions product:create,coupon:create`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient(cmd)
			if err != nil {
				return err
			}
			if err = requireToken(client); err != nil {
				return err
			}
			role, err := newRoleCollection().Create(cmd.Context(), func(ctx context.Context) (api.Role, error) {
				return client.CreateRole(ctx, args[0], permissions)
			})
			if err != nil {
				return fmt.Errorf("creating role %q: %w", args[0], err)
			}
			return renderRoles(cmd, []api.Role{role})
		},
	}

	cmd.Flags().StringSliceVar(&permissions, "permissions", nil, "permissions granted by the role")
	return cmd
}

func newRolesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <role-id>",
		Short: "Delete a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := newAPIClient(cmd)
			if err != nil {
				return err
			}
			if err = requireToken(client); err != nil {
				return err
			}
			if err = newRoleCollection().Delete(cmd.Context(), id, func(ctx context.Context) error {
				return client.DeleteRole(ctx, id)
			}); err != nil {
				return fmt.Errorf("deleting role %d: %w", id, err)
			}
			cmd.Printf("Deleted role %d\n", id)
			return nil
		},
	}
}

func renderRoles(cmd *cobra.Command, roles []api.Role) error {
	return render(cmd, roles, func(w io.Writer) error {
		rows := make([][]string, len(roles))
		for i, r := range roles {
			rows[i] = []string{strconv.Itoa(r.ID), r.Name, strings.Join(r.Permissions, ", ")}
		}
		return renderTable(w, []string{"ID", "NAME", "PERMISSIONS"}, rows)
	})
}
