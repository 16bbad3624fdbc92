package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shaiso/cloudctl/internal/domain"
	"github.com/shaiso/cloudctl/internal/handler"
)

// NewAccountCmd создаёт группу команд для управления аккаунтами.
func NewAccountCmd(sessionFn SessionFunc, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}

	var accountID string
	cmd.PersistentFlags().StringVarP(&accountID, "account-id", "A", "", "Account ID (defaults to the token's account)")

	run := func(cmd *cobra.Command, c handler.AccountCommand) error {
		return execute(cmd, sessionFn, outputFn, func(ctx context.Context, s *Session) (handler.Result, error) {
			return handler.NewAccounts(s.Clients.Accounts, s.Auth.AccountID()).Handle(ctx, c)
		})
	}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show account details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, handler.AccountGet{AccountID: domain.AccountID(accountID)})
		},
	}

	var name, email string

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, handler.AccountAdd{Name: name, Email: email})
		},
	}
	addCmd.Flags().StringVarP(&name, "account-name", "n", "", "Account name (required)")
	addCmd.Flags().StringVarP(&email, "account-email", "e", "", "Account email (required)")
	addCmd.MarkFlagRequired("account-name")
	addCmd.MarkFlagRequired("account-email")

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update account name or email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := handler.AccountUpdate{AccountID: domain.AccountID(accountID)}
			if cmd.Flags().Changed("account-name") {
				c.Name = &name
			}
			if cmd.Flags().Changed("account-email") {
				c.Email = &email
			}
			return run(cmd, c)
		},
	}
	updateCmd.Flags().StringVarP(&name, "account-name", "n", "", "New account name")
	updateCmd.Flags().StringVarP(&email, "account-email", "e", "", "New account email")
	updateCmd.MarkFlagsOneRequired("account-name", "account-email")

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, handler.AccountDelete{AccountID: domain.AccountID(accountID)})
		},
	}

	cmd.AddCommand(getCmd, addCmd, updateCmd, deleteCmd)
	return cmd
}

// NewTokenCmd создаёт группу команд для управления токенами текущего аккаунта.
func NewTokenCmd(sessionFn SessionFunc, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage access tokens",
	}

	run := func(cmd *cobra.Command, c handler.TokenCommand) error {
		return execute(cmd, sessionFn, outputFn, func(ctx context.Context, s *Session) (handler.Result, error) {
			return handler.NewTokens(s.Clients.Tokens, s.Auth.AccountID()).Handle(ctx, c)
		})
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, handler.TokenList{})
		},
	}

	var expiresAt string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := handler.TokenAdd{}
			if expiresAt != "" {
				t, err := time.Parse(time.RFC3339, expiresAt)
				if err != nil {
					return fmt.Errorf("invalid value for --expires-at %q, expected RFC 3339", expiresAt)
				}
				c.ExpiresAt = t
			}
			return run(cmd, c)
		},
	}
	addCmd.Flags().StringVar(&expiresAt, "expires-at", "", "Expiration time in RFC 3339 (default 2100-01-01T00:00:00Z)")

	deleteCmd := &cobra.Command{
		Use:   "delete TOKEN_ID",
		Short: "Revoke a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid token id %q: %w", args[0], err)
			}
			return run(cmd, handler.TokenDelete{TokenID: domain.TokenID{UUID: id}})
		},
	}

	cmd.AddCommand(listCmd, addCmd, deleteCmd)
	return cmd
}

// NewGrantCmd создаёт группу команд для управления ролями аккаунта.
func NewGrantCmd(sessionFn SessionFunc, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Manage account roles",
	}

	var accountID string
	cmd.PersistentFlags().StringVarP(&accountID, "account-id", "A", "", "Account ID (defaults to the token's account)")

	run := func(cmd *cobra.Command, c handler.GrantCommand) error {
		return execute(cmd, sessionFn, outputFn, func(ctx context.Context, s *Session) (handler.Result, error) {
			return handler.NewGrants(s.Clients.Grants, s.Auth.AccountID()).Handle(ctx, c)
		})
	}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "List roles of the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, handler.GrantGet{AccountID: domain.AccountID(accountID)})
		},
	}

	var role domain.Role
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Grant a role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, handler.GrantAdd{AccountID: domain.AccountID(accountID), Role: role})
		},
	}
	addCmd.Flags().Var(&roleFlag{value: &role}, "role", "Role (required)")
	addCmd.MarkFlagRequired("role")

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove a role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, handler.GrantDelete{AccountID: domain.AccountID(accountID), Role: role})
		},
	}
	deleteCmd.Flags().Var(&roleFlag{value: &role}, "role", "Role (required)")
	deleteCmd.MarkFlagRequired("role")

	cmd.AddCommand(getCmd, addCmd, deleteCmd)
	return cmd
}
