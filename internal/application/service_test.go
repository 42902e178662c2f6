package application

import (
	"context"
	"testing"

	"github.com/ffdias/fincli/internal/domain"
	"github.com/ffdias/fincli/internal/ports"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthedService(t *testing.T, gateway *fakeGateway) (*Service, *fakeSessionRepo) {
	t.Helper()

	repo := &fakeSessionRepo{session: domain.Session{
		Authenticated:  true,
		Token:          "tok-123",
		User:           &domain.User{Name: "Ana", Email: "ana@example.com", InvestorLevel: domain.InvestorLevelModerate},
		Accounts:       []domain.Account{{ID: "acc-1", Name: "Corrente"}, {ID: "acc-2", Name: "Poupanca"}},
		CurrentAccount: &domain.Account{ID: "acc-1", Name: "Corrente"},
	}}

	service, err := NewService(context.Background(), repo, gateway, nil)
	require.NoError(t, err)
	return service, repo
}

func TestLoginStoresTokenProfileAndAccounts(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{loginResult: ports.LoginResult{
		Token:    "tok-9",
		User:     domain.User{Name: "Ana", Email: "ana@example.com", InvestorLevel: domain.InvestorLevelBeginner},
		Accounts: []domain.Account{{ID: "acc-1", Name: "Corrente"}},
	}}
	repo := &fakeSessionRepo{}
	service, err := NewService(context.Background(), repo, gateway, nil)
	require.NoError(t, err)

	user, err := service.Login(context.Background(), domain.Credentials{Email: "ana@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)

	session := service.Session()
	assert.True(t, session.Authenticated)
	assert.Equal(t, "tok-9", session.Token)
	require.Len(t, session.Accounts, 1)

	// Persisted in the same step.
	assert.Equal(t, 1, repo.saveCalls)
	assert.True(t, repo.session.Authenticated)
}

func TestLoginValidationBlocksNetwork(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	repo := &fakeSessionRepo{}
	service, err := NewService(context.Background(), repo, gateway, nil)
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.Credentials{Email: "nope", Password: "secret123"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, gateway.counts().login, "invalid credentials must not reach the network")
	assert.Zero(t, repo.saveCalls)
}

func TestLogoutKeepsAccountsAndSelection(t *testing.T) {
	t.Parallel()

	service, repo := newAuthedService(t, &fakeGateway{})

	require.NoError(t, service.Logout(context.Background()))

	session := service.Session()
	assert.False(t, session.Authenticated)
	assert.Empty(t, session.Token)
	assert.Nil(t, session.User)
	assert.Len(t, session.Accounts, 2)
	require.NotNil(t, session.CurrentAccount)
	assert.Equal(t, domain.AccountID("acc-1"), session.CurrentAccount.ID)

	assert.False(t, repo.session.Authenticated, "logout must persist")
}

func TestSignupPasswordMismatchIssuesNoRequest(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	repo := &fakeSessionRepo{}
	service, err := NewService(context.Background(), repo, gateway, nil)
	require.NoError(t, err)

	form := domain.SignupForm{
		Name:            "Ana Souza",
		Document:        "123",
		PhoneNumber:     "11999",
		BirthDate:       "1990-04-12",
		Email:           "ana@example.com",
		Password:        "secret123",
		ConfirmPassword: "different1",
		InvestorLevel:   domain.InvestorLevelBeginner,
	}
	_, err = service.Signup(context.Background(), form)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "confirm-password", verr.Field)
	assert.Zero(t, gateway.counts().register, "validation failure must issue zero network requests")
}

func TestCreateAccountAppendsToSession(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{created: ports.CreatedAccount{ID: "acc-3", Name: "Investimentos", Balance: decimal.Zero}}
	service, repo := newAuthedService(t, gateway)

	created, err := service.CreateAccount(context.Background(), "Investimentos", domain.AccountTypePersonal)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountID("acc-3"), created.ID)

	accounts := service.Accounts()
	require.Len(t, accounts, 3)
	assert.Equal(t, domain.AccountID("acc-3"), accounts[2].ID)
	assert.Len(t, repo.session.Accounts, 3)
}

func TestCreateAccountRequiresAuth(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	repo := &fakeSessionRepo{}
	service, err := NewService(context.Background(), repo, gateway, nil)
	require.NoError(t, err)

	_, err = service.CreateAccount(context.Background(), "Corrente", domain.AccountTypePersonal)
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
	assert.Zero(t, gateway.counts().create)
}

func TestCreateAccountRejectsUnknownType(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	service, _ := newAuthedService(t, gateway)

	_, err := service.CreateAccount(context.Background(), "Corrente", "corporate")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "type", verr.Field)
}

func TestSelectAccountPersistsSelection(t *testing.T) {
	t.Parallel()

	service, repo := newAuthedService(t, &fakeGateway{})

	require.NoError(t, service.SelectAccount(context.Background(), "acc-2"))

	account, err := service.CurrentAccount()
	require.NoError(t, err)
	assert.Equal(t, "Poupanca", account.Name)
	require.NotNil(t, repo.session.CurrentAccount)
	assert.Equal(t, domain.AccountID("acc-2"), repo.session.CurrentAccount.ID)
}

func TestSelectAccountUnknownID(t *testing.T) {
	t.Parallel()

	service, _ := newAuthedService(t, &fakeGateway{})

	err := service.SelectAccount(context.Background(), "acc-404")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestTokenAndCurrentAccountErrors(t *testing.T) {
	t.Parallel()

	repo := &fakeSessionRepo{}
	service, err := NewService(context.Background(), repo, &fakeGateway{}, nil)
	require.NoError(t, err)

	_, err = service.Token()
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	_, err = service.CurrentAccount()
	assert.ErrorIs(t, err, domain.ErrNoAccountSelected)
}
