package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	dashboardadapter "github.com/ffdias/fincli/internal/adapters/render/dashboard"
	"github.com/ffdias/fincli/internal/application"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *app) *cobra.Command {
	var asJSON bool
	var hideBalance bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the selected account's balance and activity feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var view application.DashboardView
			fetch := func(ctx context.Context) error {
				var err error
				view, err = app.wallets.Dashboard(ctx)
				return err
			}

			if asJSON {
				if err := fetch(cmd.Context()); err != nil {
					return err
				}
			} else {
				if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Loading dashboard...", fetch); err != nil {
					return err
				}
			}

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(view)
			}

			output, err := app.dashboardRenderer(view, dashboardadapter.RenderOptions{HideBalance: hideBalance})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&hideBalance, "hide-balance", false, "Mask monetary values")

	return cmd
}
