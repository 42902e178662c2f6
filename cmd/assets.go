package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newAssetsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "assets",
		Short: "List the assets available for investment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			assets, err := app.wallets.Assets(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(assets)
			}

			for _, asset := range assets {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
					asset.ID, asset.Symbol, asset.Name, asset.CurrentPrice.StringFixed(2))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
