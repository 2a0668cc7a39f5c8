package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/holonet/internal/store"
	"github.com/mesh-intelligence/holonet/pkg/types"
)

func newUsersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(newUsersAddCmd(a))
	cmd.AddCommand(newUsersListCmd(a))
	return cmd
}

type userAddFlags struct {
	email    string
	password string
	inactive bool
}

func newUsersAddCmd(a *app) *cobra.Command {
	var f userAddFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUsersAdd(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.email, "email", "", "email address")
	cmd.Flags().StringVar(&f.password, "password", "", "password, stored as a bcrypt hash")
	cmd.Flags().BoolVar(&f.inactive, "inactive", false, "create the account as inactive")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (a *app) runUsersAdd(cmd *cobra.Command, f userAddFlags) error {
	u := &types.User{Email: f.email, IsActive: !f.inactive}
	if err := u.SetPassword(f.password); err != nil {
		return fmt.Errorf("password: %w", err)
	}
	if err := u.Validate(); err != nil {
		return err
	}

	b, err := a.openStore()
	if err != nil {
		return err
	}
	defer b.Detach()

	id, created, err := store.EnsureUser(cmd.Context(), b.Users(), u)
	if err != nil {
		return sysError("add user: %w", err)
	}
	if !created {
		return fmt.Errorf("user %d <%s> already exists", id, f.email)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created user %d <%s>\n", id, f.email)
	return nil
}

func newUsersListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.openStore()
			if err != nil {
				return err
			}
			defer b.Detach()

			users, err := b.Users().Fetch(cmd.Context())
			if err != nil {
				return sysError("list users: %w", err)
			}
			out := make([]map[string]any, 0, len(users))
			for _, u := range users {
				out = append(out, u.Serialize())
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}
