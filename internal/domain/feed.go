package domain

import (
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// FeedEntry is the unified projection of an Operation or an Investment
// for chronological display. Investments always project as deposits.
type FeedEntry struct {
	ID        string
	Type      OperationType
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// MergeFeed combines wallet operations and investment purchases into a
// single feed sorted ascending by creation time. The sort is stable:
// entries with an identical timestamp keep operations before
// investments, in source order. Either slice may be nil.
func MergeFeed(operations []Operation, investments []Investment) []FeedEntry {
	entries := lo.Map(operations, func(op Operation, _ int) FeedEntry {
		return FeedEntry{
			ID:        op.OperationID,
			Type:      op.Type,
			Amount:    op.Amount,
			CreatedAt: op.CreatedAt,
		}
	})

	entries = append(entries, lo.Map(investments, func(inv Investment, _ int) FeedEntry {
		return FeedEntry{
			ID:        inv.InvestmentID,
			Type:      OperationDeposit,
			Amount:    inv.Amount,
			CreatedAt: inv.CreatedAt,
		}
	})...)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	return entries
}
