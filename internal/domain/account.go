package domain

type AccountID string

type AccountType string

const (
	AccountTypePersonal AccountType = "personal"
	AccountTypeBusiness AccountType = "business"
)

// Account is one bank account owned by the authenticated user, as the
// API reports it on login.
type Account struct {
	ID   AccountID
	Name string
}

func (t AccountType) Valid() bool {
	switch t {
	case AccountTypePersonal, AccountTypeBusiness:
		return true
	}
	return false
}
