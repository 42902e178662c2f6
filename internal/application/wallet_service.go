package application

import (
	"context"
	"fmt"

	"github.com/ffdias/fincli/internal/cache"
	"github.com/ffdias/fincli/internal/domain"
	"github.com/ffdias/fincli/internal/ports"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// WalletService serves the dashboard reads. Wallet and investments go
// through the resource cache, so repeated reads within one process
// reuse the last good result until a mutation invalidates it.
type WalletService struct {
	sessions *Service
	gateway  ports.Gateway
	store    *cache.Store
}

func NewWalletService(sessions *Service, gateway ports.Gateway, store *cache.Store) *WalletService {
	return &WalletService{
		sessions: sessions,
		gateway:  gateway,
		store:    store,
	}
}

// DashboardView is what the dashboard screen renders: the selected
// account, its balance and the merged operation/investment feed.
type DashboardView struct {
	Account domain.Account
	Balance decimal.Decimal
	Feed    []domain.FeedEntry
}

func (w *WalletService) Wallet(ctx context.Context) (domain.Wallet, error) {
	token, account, err := w.scope()
	if err != nil {
		return domain.Wallet{}, err
	}

	key := cache.Key{Kind: cache.KindWallet, Account: account.ID}
	return cache.Get(ctx, w.store, key, func(ctx context.Context) (domain.Wallet, error) {
		return w.gateway.Wallet(ctx, token, account.ID)
	})
}

func (w *WalletService) Investments(ctx context.Context) ([]domain.Investment, error) {
	token, account, err := w.scope()
	if err != nil {
		return nil, err
	}

	key := cache.Key{Kind: cache.KindInvestments, Account: account.ID}
	return cache.Get(ctx, w.store, key, func(ctx context.Context) ([]domain.Investment, error) {
		return w.gateway.Investments(ctx, token, account.ID)
	})
}

func (w *WalletService) Assets(ctx context.Context) ([]domain.Asset, error) {
	token, err := w.sessions.Token()
	if err != nil {
		return nil, err
	}

	key := cache.Key{Kind: cache.KindAssets}
	return cache.Get(ctx, w.store, key, func(ctx context.Context) ([]domain.Asset, error) {
		return w.gateway.Assets(ctx, token)
	})
}

// Dashboard fetches wallet and investments concurrently and merges
// them into one chronological feed. A failure of either source fails
// the whole view; there is no partial dashboard.
func (w *WalletService) Dashboard(ctx context.Context) (DashboardView, error) {
	_, account, err := w.scope()
	if err != nil {
		return DashboardView{}, err
	}

	var (
		wallet      domain.Wallet
		investments []domain.Investment
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		wallet, err = w.Wallet(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		investments, err = w.Investments(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return DashboardView{}, fmt.Errorf("load dashboard: %w", err)
	}

	return DashboardView{
		Account: account,
		Balance: wallet.Balance,
		Feed:    domain.MergeFeed(wallet.Operations, investments),
	}, nil
}

// FeedLoading reports whether the merged feed is still loading: true
// while either source is in flight, regardless of the other having
// settled.
func (w *WalletService) FeedLoading() bool {
	account, err := w.sessions.CurrentAccount()
	if err != nil {
		return false
	}

	walletState := w.store.State(cache.Key{Kind: cache.KindWallet, Account: account.ID})
	investmentsState := w.store.State(cache.Key{Kind: cache.KindInvestments, Account: account.ID})
	return walletState == cache.StateLoading || investmentsState == cache.StateLoading
}

func (w *WalletService) scope() (string, domain.Account, error) {
	token, err := w.sessions.Token()
	if err != nil {
		return "", domain.Account{}, err
	}
	account, err := w.sessions.CurrentAccount()
	if err != nil {
		return "", domain.Account{}, err
	}
	return token, account, nil
}
