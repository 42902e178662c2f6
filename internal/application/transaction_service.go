package application

import (
	"context"
	"fmt"

	"github.com/ffdias/fincli/internal/cache"
	"github.com/ffdias/fincli/internal/domain"
	"github.com/ffdias/fincli/internal/ports"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MutationError is a write that the server rejected or that never
// reached it. Read caches are left untouched when it is returned;
// nothing is applied optimistically.
type MutationError struct {
	Action string
	Err    error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Action, e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

// TransactionService runs the deposit/withdraw/transfer/pay/invest
// flow: validate, post, then invalidate the affected read resources.
// Invalidation happens strictly after a successful response.
type TransactionService struct {
	sessions *Service
	wallets  *WalletService
	gateway  ports.Gateway
	store    *cache.Store
	log      *zap.Logger
}

func NewTransactionService(sessions *Service, wallets *WalletService, gateway ports.Gateway, store *cache.Store, log *zap.Logger) *TransactionService {
	if log == nil {
		log = zap.NewNop()
	}
	return &TransactionService{
		sessions: sessions,
		wallets:  wallets,
		gateway:  gateway,
		store:    store,
		log:      log,
	}
}

func (t *TransactionService) Deposit(ctx context.Context, amount decimal.Decimal) error {
	return t.walletTransaction(ctx, domain.OperationDeposit, amount)
}

func (t *TransactionService) Withdraw(ctx context.Context, amount decimal.Decimal) error {
	return t.walletTransaction(ctx, domain.OperationWithdraw, amount)
}

func (t *TransactionService) Pay(ctx context.Context, amount decimal.Decimal) error {
	return t.walletTransaction(ctx, domain.OperationPay, amount)
}

// Transfer posts a wallet transaction of type transfer. The
// destination is required and validated here, though the wire body
// only carries amount and type; the server derives the rest.
func (t *TransactionService) Transfer(ctx context.Context, amount decimal.Decimal, destination domain.AccountID) error {
	if destination == "" {
		return &domain.ValidationError{Field: "to", Message: "destination account is required"}
	}
	return t.walletTransaction(ctx, domain.OperationTransfer, amount)
}

// Invest resolves the asset id against the catalog, posts the order
// and invalidates both the wallet and the investments resources.
func (t *TransactionService) Invest(ctx context.Context, assetID string, amount decimal.Decimal) error {
	if err := domain.ValidateAmount(amount); err != nil {
		return err
	}
	if assetID == "" {
		return &domain.ValidationError{Field: "asset", Message: "is required"}
	}

	catalog, err := t.wallets.Assets(ctx)
	if err != nil {
		return err
	}
	asset, ok := domain.FindAsset(catalog, assetID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrAssetNotFound, assetID)
	}

	token, account, err := t.scope()
	if err != nil {
		return err
	}

	order := ports.InvestmentOrder{
		Amount:        amount,
		AssetName:     asset.Name,
		PurchasePrice: asset.CurrentPrice,
	}
	if err := t.gateway.PostInvestment(ctx, token, account.ID, order); err != nil {
		return &MutationError{Action: "invest", Err: err}
	}

	t.invalidate(account.ID, true)
	return nil
}

func (t *TransactionService) walletTransaction(ctx context.Context, kind domain.OperationType, amount decimal.Decimal) error {
	if err := domain.ValidateAmount(amount); err != nil {
		return err
	}

	token, account, err := t.scope()
	if err != nil {
		return err
	}

	tx := ports.WalletTransaction{Amount: amount, Type: kind}
	if err := t.gateway.PostWalletTransaction(ctx, token, account.ID, tx); err != nil {
		return &MutationError{Action: string(kind), Err: err}
	}

	t.invalidate(account.ID, false)
	return nil
}

// invalidate marks the wallet stale after any successful mutation, and
// the investments list as well when the mutation was an investment.
func (t *TransactionService) invalidate(accountID domain.AccountID, investment bool) {
	keys := []cache.Key{{Kind: cache.KindWallet, Account: accountID}}
	if investment {
		keys = append(keys, cache.Key{Kind: cache.KindInvestments, Account: accountID})
	}
	t.store.Invalidate(keys...)
	t.log.Debug("mutation committed",
		zap.String("account", string(accountID)),
		zap.Bool("investment", investment))
}

func (t *TransactionService) scope() (string, domain.Account, error) {
	token, err := t.sessions.Token()
	if err != nil {
		return "", domain.Account{}, err
	}
	account, err := t.sessions.CurrentAccount()
	if err != nil {
		return "", domain.Account{}, err
	}
	return token, account, nil
}
