package cmd

import (
	"fmt"

	"github.com/ffdias/fincli/internal/domain"
	"github.com/spf13/cobra"
)

func newSignupCmd(app *app) *cobra.Command {
	var form domain.SignupForm
	var investorLevel string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form.InvestorLevel = domain.InvestorLevel(investorLevel)

			user, err := app.sessions.Signup(cmd.Context(), form)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Registered %s, run `fin login` to start a session\n", user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&form.Document, "document", "", "CPF document number")
	cmd.Flags().StringVar(&form.PhoneNumber, "phone-number", "", "Phone number")
	cmd.Flags().StringVar(&form.BirthDate, "birth-date", "", "Birth date (dd/mm/yyyy)")
	cmd.Flags().StringVar(&form.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&form.Password, "password", "", "Password (6+ characters)")
	cmd.Flags().StringVar(&form.ConfirmPassword, "confirm-password", "", "Password confirmation")
	cmd.Flags().StringVar(&investorLevel, "investor-level", string(domain.InvestorLevelBeginner), "Investor level (INICIANTE, MODERADO, AVANCADO, PROFISSIONAL)")

	return cmd
}
