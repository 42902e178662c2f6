// Package application wires the domain to the gateway, the session
// repository and the read cache. Services here are what the commands
// call; nothing in cmd touches the transport directly.
package application

import (
	"context"
	"fmt"

	"github.com/ffdias/fincli/internal/domain"
	"github.com/ffdias/fincli/internal/ports"
	"go.uber.org/zap"
)

// Service owns the client session: authentication, the account list
// and the current-account selection. Every mutation is written through
// to the session repository so state survives across invocations.
type Service struct {
	session domain.Session
	repo    ports.SessionRepository
	gateway ports.Gateway
	log     *zap.Logger
}

func NewService(ctx context.Context, repo ports.SessionRepository, gateway ports.Gateway, log *zap.Logger) (*Service, error) {
	if log == nil {
		log = zap.NewNop()
	}

	session, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	return &Service{
		session: session,
		repo:    repo,
		gateway: gateway,
		log:     log,
	}, nil
}

// Session returns a copy of the current session state.
func (s *Service) Session() domain.Session {
	return s.session
}

// Login validates the credentials, authenticates against the API and
// stores token, profile and account list in one step.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (domain.User, error) {
	if err := creds.Validate(); err != nil {
		return domain.User{}, err
	}

	result, err := s.gateway.Login(ctx, creds)
	if err != nil {
		return domain.User{}, fmt.Errorf("login: %w", err)
	}

	s.session.SetAuth(result.Token, result.User)
	s.session.SetAccounts(result.Accounts)
	if err := s.persist(ctx); err != nil {
		return domain.User{}, err
	}

	s.log.Debug("session authenticated",
		zap.String("email", result.User.Email),
		zap.Int("accounts", len(result.Accounts)))
	return result.User, nil
}

// Logout clears the authentication fields. The account list and the
// current selection survive so a re-login lands where the user left.
func (s *Service) Logout(ctx context.Context) error {
	s.session.ClearAuth()
	return s.persist(ctx)
}

// Signup validates the form and registers the user. It does not log
// the new user in.
func (s *Service) Signup(ctx context.Context, form domain.SignupForm) (domain.User, error) {
	if err := form.Validate(); err != nil {
		return domain.User{}, err
	}

	user, err := s.gateway.Register(ctx, form)
	if err != nil {
		return domain.User{}, fmt.Errorf("signup: %w", err)
	}

	return user, nil
}

// CreateAccount opens a new account and appends it to the session's
// account list. The server has no account-list read, so the local list
// is the only place the new account shows up before the next login.
func (s *Service) CreateAccount(ctx context.Context, name string, accountType domain.AccountType) (ports.CreatedAccount, error) {
	if name == "" {
		return ports.CreatedAccount{}, &domain.ValidationError{Field: "name", Message: "is required"}
	}
	if !accountType.Valid() {
		return ports.CreatedAccount{}, &domain.ValidationError{Field: "type", Message: "must be personal or business"}
	}

	token, err := s.Token()
	if err != nil {
		return ports.CreatedAccount{}, err
	}

	created, err := s.gateway.CreateAccount(ctx, token, name, accountType)
	if err != nil {
		return ports.CreatedAccount{}, fmt.Errorf("create account: %w", err)
	}

	s.session.SetAccounts(append(s.session.Accounts, domain.Account{ID: created.ID, Name: created.Name}))
	if err := s.persist(ctx); err != nil {
		return ports.CreatedAccount{}, err
	}

	return created, nil
}

// Accounts lists the accounts known to the session, in server order.
func (s *Service) Accounts() []domain.Account {
	return s.session.Accounts
}

// SelectAccount makes the account with the given id the current one
// for dashboard reads and writes.
func (s *Service) SelectAccount(ctx context.Context, id domain.AccountID) error {
	for _, account := range s.session.Accounts {
		if account.ID == id {
			s.session.SetCurrentAccount(&account)
			return s.persist(ctx)
		}
	}

	return fmt.Errorf("account %q not found in session, run `fin account list`", id)
}

// Token returns the bearer token, or ErrNotAuthenticated.
func (s *Service) Token() (string, error) {
	if !s.session.Authenticated || s.session.Token == "" {
		return "", domain.ErrNotAuthenticated
	}
	return s.session.Token, nil
}

// CurrentAccount returns the selected account, or ErrNoAccountSelected.
func (s *Service) CurrentAccount() (domain.Account, error) {
	if s.session.CurrentAccount == nil {
		return domain.Account{}, domain.ErrNoAccountSelected
	}
	return *s.session.CurrentAccount, nil
}

func (s *Service) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.session); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}
