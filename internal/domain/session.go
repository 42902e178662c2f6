package domain

// Session holds the client-side authentication state: token, profile,
// the accounts owned by the user and the one selected as current. It
// is an explicitly-owned value passed to whoever needs it, persisted
// by the caller after each mutation.
type Session struct {
	Authenticated  bool
	Token          string
	User           *User
	Accounts       []Account
	CurrentAccount *Account
}

// SetAuth marks the session authenticated and stores the token and
// profile. The token format is not validated.
func (s *Session) SetAuth(token string, user User) {
	s.Authenticated = true
	s.Token = token
	s.User = &user
}

// SetAccounts replaces the full account list, keeping server order.
func (s *Session) SetAccounts(accounts []Account) {
	s.Accounts = accounts
}

// SetCurrentAccount replaces the selection. Membership in Accounts is
// not checked.
func (s *Session) SetCurrentAccount(account *Account) {
	s.CurrentAccount = account
}

// ClearAuth resets the authentication fields only. Accounts and
// CurrentAccount deliberately survive a logout so a re-login lands on
// the same selection.
func (s *Session) ClearAuth() {
	s.Authenticated = false
	s.Token = ""
	s.User = nil
}
