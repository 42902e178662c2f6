package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fin",
		Short:         "Personal finance CLI: accounts, wallet and investments from the terminal",
		Long:          "fin talks to your bank's API: log in, pick an account, view the dashboard feed, move money and buy assets without leaving the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newSignupCmd(app),
		newAccountCmd(app),
		newDashboardCmd(app),
		newAssetsCmd(app),
		newDepositCmd(app),
		newWithdrawCmd(app),
		newTransferCmd(app),
		newPayCmd(app),
		newInvestCmd(app),
	)

	return rootCmd
}
