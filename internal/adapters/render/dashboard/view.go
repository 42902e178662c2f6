package dashboard

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/lipgloss"
	"github.com/ffdias/fincli/internal/application"
	"github.com/ffdias/fincli/internal/domain"
	"github.com/shopspring/decimal"
)

// RenderOptions controls the dashboard screen. HideBalance masks every
// monetary value while keeping the feed structure visible.
type RenderOptions struct {
	HideBalance bool
}

const hiddenAmount = "R$ ****"

func renderView(view application.DashboardView, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Account: %s", view.Account.Name)),
		s.header.Render(fmt.Sprintf("id: %s", view.Account.ID)),
		balanceLine(view.Balance, opts, s),
		s.section.Render(s.title.Render("Activity")),
	}

	if len(view.Feed) == 0 {
		lines = append(lines, s.empty.Render("No operations yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, entry := range view.Feed {
		lines = append(lines, feedLine(entry, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func balanceLine(balance decimal.Decimal, opts RenderOptions, s styles) string {
	if opts.HideBalance {
		return s.hidden.Render("Balance: " + hiddenAmount)
	}

	return s.balance.Render("Balance: " + formatBRL(balance))
}

func feedLine(entry domain.FeedEntry, opts RenderOptions, s styles) string {
	amount := formatBRL(entry.Amount)
	if opts.HideBalance {
		amount = hiddenAmount
	}

	sign := "-"
	amountStyle := s.entryOut
	if entry.Type == domain.OperationDeposit {
		sign = "+"
		amountStyle = s.entryIn
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.when.Render(entry.CreatedAt.Format("02/01 15:04")),
		"  ",
		s.kind.Render(fmt.Sprintf("%-8s", entry.Type)),
		"  ",
		amountStyle.Render(sign+amount),
	)
}

// formatBRL renders an amount the way Brazilian bank statements do,
// for example "R$1.520,75".
func formatBRL(amount decimal.Decimal) string {
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return money.New(cents, money.BRL).Display()
}
