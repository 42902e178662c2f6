package domain

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

const minPasswordLength = 6

// Credentials are the login form values.
type Credentials struct {
	Email    string
	Password string
}

func (c Credentials) Validate() error {
	if err := validateEmail(c.Email); err != nil {
		return err
	}
	return validatePassword("password", c.Password)
}

// SignupForm carries everything the register endpoint needs, plus the
// password confirmation that never leaves the client.
type SignupForm struct {
	Name            string
	Document        string
	PhoneNumber     string
	BirthDate       string
	Email           string
	Password        string
	ConfirmPassword string
	InvestorLevel   InvestorLevel
}

func (f SignupForm) Validate() error {
	if len(strings.TrimSpace(f.Name)) < 3 {
		return &ValidationError{Field: "name", Message: "must have at least 3 characters"}
	}
	if strings.TrimSpace(f.Document) == "" {
		return &ValidationError{Field: "document", Message: "is required"}
	}
	if strings.TrimSpace(f.PhoneNumber) == "" {
		return &ValidationError{Field: "phone-number", Message: "is required"}
	}
	if strings.TrimSpace(f.BirthDate) == "" {
		return &ValidationError{Field: "birth-date", Message: "is required"}
	}
	if err := validateEmail(f.Email); err != nil {
		return err
	}
	if err := validatePassword("password", f.Password); err != nil {
		return err
	}
	if f.Password != f.ConfirmPassword {
		return &ValidationError{Field: "confirm-password", Message: "does not match password"}
	}
	if !f.InvestorLevel.Valid() {
		return &ValidationError{Field: "investor-level", Message: "must be one of INICIANTE, MODERADO, AVANCADO, PROFISSIONAL"}
	}
	return nil
}

// ValidateAmount rejects non-positive transaction amounts before they
// reach the network.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &ValidationError{Field: "amount", Message: "must be greater than zero"}
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

func validatePassword(field, password string) error {
	if password == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	if len(password) < minPasswordLength {
		return &ValidationError{Field: field, Message: "must have at least 6 characters"}
	}
	return nil
}
