package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment is one asset purchase made from an account. Immutable
// once fetched.
type Investment struct {
	InvestmentID string
	Amount       decimal.Decimal
	AssetName    string
	AssetType    string
	CreatedAt    time.Time
}
