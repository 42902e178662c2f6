package application

import (
	"context"
	"sync"

	"github.com/ffdias/fincli/internal/domain"
	"github.com/ffdias/fincli/internal/ports"
)

type fakeSessionRepo struct {
	mu        sync.Mutex
	session   domain.Session
	saveCalls int
}

func (r *fakeSessionRepo) Load(context.Context) (domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session, nil
}

func (r *fakeSessionRepo) Save(_ context.Context, session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = session
	r.saveCalls++
	return nil
}

// fakeGateway counts every call so tests can assert which reads and
// writes actually hit the network.
type fakeGateway struct {
	mu sync.Mutex

	loginResult ports.LoginResult
	loginErr    error
	wallet      domain.Wallet
	walletErr   error
	investments []domain.Investment
	assets      []domain.Asset
	created     ports.CreatedAccount
	txErr       error
	investErr   error

	// walletBlock, when set, is received from before the wallet read
	// returns, letting tests observe the loading state.
	walletBlock chan struct{}

	loginCalls       int
	registerCalls    int
	createCalls      int
	walletCalls      int
	investmentCalls  int
	assetCalls       int
	transactionCalls int
	investCalls      int

	lastTransaction ports.WalletTransaction
	lastOrder       ports.InvestmentOrder
}

var _ ports.Gateway = (*fakeGateway)(nil)

func (g *fakeGateway) Login(context.Context, domain.Credentials) (ports.LoginResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.loginCalls++
	return g.loginResult, g.loginErr
}

func (g *fakeGateway) Register(_ context.Context, form domain.SignupForm) (domain.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.registerCalls++
	return domain.User{Name: form.Name, Email: form.Email, InvestorLevel: form.InvestorLevel}, nil
}

func (g *fakeGateway) CreateAccount(_ context.Context, _ string, _ string, _ domain.AccountType) (ports.CreatedAccount, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.createCalls++
	return g.created, nil
}

func (g *fakeGateway) Wallet(context.Context, string, domain.AccountID) (domain.Wallet, error) {
	g.mu.Lock()
	block := g.walletBlock
	g.walletCalls++
	g.mu.Unlock()

	if block != nil {
		<-block
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.wallet, g.walletErr
}

func (g *fakeGateway) Investments(context.Context, string, domain.AccountID) ([]domain.Investment, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.investmentCalls++
	return g.investments, nil
}

func (g *fakeGateway) Assets(context.Context, string) ([]domain.Asset, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.assetCalls++
	return g.assets, nil
}

func (g *fakeGateway) PostWalletTransaction(_ context.Context, _ string, _ domain.AccountID, tx ports.WalletTransaction) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.transactionCalls++
	g.lastTransaction = tx
	return g.txErr
}

func (g *fakeGateway) PostInvestment(_ context.Context, _ string, _ domain.AccountID, order ports.InvestmentOrder) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.investCalls++
	g.lastOrder = order
	return g.investErr
}

type gatewayCounts struct {
	login, register, create           int
	wallet, investments, assets       int
	transactions, investmentPurchases int
}

func (g *fakeGateway) counts() gatewayCounts {
	g.mu.Lock()
	defer g.mu.Unlock()
	return gatewayCounts{
		login:               g.loginCalls,
		register:            g.registerCalls,
		create:              g.createCalls,
		wallet:              g.walletCalls,
		investments:         g.investmentCalls,
		assets:              g.assetCalls,
		transactions:        g.transactionCalls,
		investmentPurchases: g.investCalls,
	}
}
