package cmd

import (
	"context"
	"fmt"

	"github.com/ffdias/fincli/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newDepositCmd(app *app) *cobra.Command {
	return newAmountCmd("deposit <amount>", "Deposit into the selected account", app.transactions.Deposit)
}

func newWithdrawCmd(app *app) *cobra.Command {
	return newAmountCmd("withdraw <amount>", "Withdraw from the selected account", app.transactions.Withdraw)
}

func newPayCmd(app *app) *cobra.Command {
	return newAmountCmd("pay <amount>", "Pay from the selected account", app.transactions.Pay)
}

func newTransferCmd(app *app) *cobra.Command {
	var destination string

	cmd := &cobra.Command{
		Use:   "transfer <amount>",
		Short: "Transfer from the selected account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			if err := app.transactions.Transfer(cmd.Context(), amount, domain.AccountID(destination)); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Transferred %s to %s\n", amount.StringFixed(2), destination)
			return nil
		},
	}

	cmd.Flags().StringVar(&destination, "to", "", "Destination account ID")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newInvestCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "invest <asset-id> <amount>",
		Short: "Buy an asset with wallet funds",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			if err := app.transactions.Invest(cmd.Context(), args[0], amount); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Invested %s in %s\n", amount.StringFixed(2), args[0])
			return nil
		},
	}
}

func newAmountCmd(use, short string, run func(context.Context, decimal.Decimal) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			if err := run(cmd.Context(), amount); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Done: %s %s\n", cmd.Name(), amount.StringFixed(2))
			return nil
		},
	}
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	return amount, nil
}
