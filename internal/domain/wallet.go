package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OperationType string

const (
	OperationDeposit  OperationType = "deposit"
	OperationWithdraw OperationType = "withdraw"
	OperationTransfer OperationType = "transfer"
	OperationPay      OperationType = "pay"
)

// Operation is a single wallet movement. Immutable once fetched;
// identity is the OperationID.
type Operation struct {
	OperationID string
	Type        OperationType
	Amount      decimal.Decimal
	CreatedAt   time.Time
}

// Wallet is the current-account balance plus its operation history.
type Wallet struct {
	Balance    decimal.Decimal
	Operations []Operation
}
