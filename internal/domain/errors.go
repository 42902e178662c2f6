package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated  = errors.New("not authenticated, run `fin login` first")
	ErrNoAccountSelected = errors.New("no account selected, run `fin account use <account-id>` first")
	ErrAssetNotFound     = errors.New("asset not found in catalog")
)

// ValidationError is a client-side form constraint violation. It is
// raised before any network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
