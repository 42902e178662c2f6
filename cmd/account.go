package cmd

import (
	"fmt"

	"github.com/ffdias/fincli/internal/domain"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}

	cmd.AddCommand(
		newAccountListCmd(app),
		newAccountCreateCmd(app),
		newAccountUseCmd(app),
	)

	return cmd
}

func newAccountListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the session's accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current := domain.AccountID("")
			if account, err := app.sessions.CurrentAccount(); err == nil {
				current = account.ID
			}

			for _, account := range app.sessions.Accounts() {
				marker := " "
				if account.ID == current {
					marker = "*"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\n", marker, account.ID, account.Name)
			}

			return nil
		},
	}
}

func newAccountCreateCmd(app *app) *cobra.Command {
	var name string
	var accountType string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := app.sessions.CreateAccount(cmd.Context(), name, domain.AccountType(accountType))
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created account %s (%s)\n", created.ID, created.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Account name")
	cmd.Flags().StringVar(&accountType, "type", string(domain.AccountTypePersonal), "Account type (personal or business)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newAccountUseCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use <account-id>",
		Short: "Select the account the other commands operate on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.sessions.SelectAccount(cmd.Context(), domain.AccountID(args[0])); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Using account %s\n", args[0])
			return nil
		},
	}
}
