package ports

import (
	"context"

	"github.com/ffdias/fincli/internal/domain"
	"github.com/shopspring/decimal"
)

// LoginResult is everything the login endpoint hands back in one shot.
type LoginResult struct {
	Token    string
	User     domain.User
	Accounts []domain.Account
}

// CreatedAccount is the create-account response.
type CreatedAccount struct {
	ID        domain.AccountID
	Name      string
	Balance   decimal.Decimal
	CreatedAt string
}

// WalletTransaction is the body of a wallet write.
type WalletTransaction struct {
	Amount decimal.Decimal
	Type   domain.OperationType
}

// InvestmentOrder is the body of an investment write, with the asset
// already resolved from the catalog.
type InvestmentOrder struct {
	Amount        decimal.Decimal
	AssetName     string
	PurchasePrice decimal.Decimal
}

// Gateway is the remote finance API. Reads attach the bearer token and
// fail on any non-2xx status or response shape mismatch.
type Gateway interface {
	Login(ctx context.Context, creds domain.Credentials) (LoginResult, error)
	Register(ctx context.Context, form domain.SignupForm) (domain.User, error)
	CreateAccount(ctx context.Context, token, name string, accountType domain.AccountType) (CreatedAccount, error)
	Wallet(ctx context.Context, token string, accountID domain.AccountID) (domain.Wallet, error)
	Investments(ctx context.Context, token string, accountID domain.AccountID) ([]domain.Investment, error)
	Assets(ctx context.Context, token string) ([]domain.Asset, error)
	PostWalletTransaction(ctx context.Context, token string, accountID domain.AccountID, tx WalletTransaction) error
	PostInvestment(ctx context.Context, token string, accountID domain.AccountID, order InvestmentOrder) error
}
