package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/ffdias/fincli/internal/domain"
	"github.com/ffdias/fincli/internal/ports"
	"github.com/shopspring/decimal"
)

// Wire shapes, one per endpoint, each with an explicit validate. The
// field naming mixes snake_case and camelCase exactly as the server
// sends it.

type userSchema struct {
	Name          string `json:"name"`
	Document      string `json:"document"`
	PhoneNumber   string `json:"phoneNumber"`
	BirthDate     string `json:"birthDate"`
	Email         string `json:"email"`
	InvestorLevel string `json:"investorLevel"`
}

func (s userSchema) validate() error {
	if s.Name == "" {
		return errors.New("user missing name")
	}
	if s.Email == "" {
		return errors.New("user missing email")
	}
	if !domain.InvestorLevel(s.InvestorLevel).Valid() {
		return fmt.Errorf("user has unknown investor level %q", s.InvestorLevel)
	}
	return nil
}

func (s userSchema) toDomain() domain.User {
	return domain.User{
		Name:          s.Name,
		Document:      s.Document,
		PhoneNumber:   s.PhoneNumber,
		BirthDate:     s.BirthDate,
		Email:         s.Email,
		InvestorLevel: domain.InvestorLevel(s.InvestorLevel),
	}
}

type accountSchema struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

func (s accountSchema) validate() error {
	if s.AccountID == "" {
		return errors.New("account missing account_id")
	}
	return nil
}

type loginResponseSchema struct {
	Token    string          `json:"token"`
	User     userSchema      `json:"user"`
	Accounts []accountSchema `json:"accounts"`
}

func (s loginResponseSchema) validate() error {
	if s.Token == "" {
		return errors.New("login response missing token")
	}
	if err := s.User.validate(); err != nil {
		return err
	}
	for i, account := range s.Accounts {
		if err := account.validate(); err != nil {
			return fmt.Errorf("accounts[%d]: %w", i, err)
		}
	}
	return nil
}

type loginRequestSchema struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequestSchema struct {
	Name          string `json:"name"`
	Document      string `json:"document"`
	PhoneNumber   string `json:"phoneNumber"`
	BirthDate     string `json:"birthDate"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	InvestorLevel string `json:"investorLevel"`
}

type createAccountRequestSchema struct {
	Name        string `json:"name"`
	AccountType string `json:"accountType"`
}

type createAccountResponseSchema struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt string          `json:"createdAt"`
}

func (s createAccountResponseSchema) validate() error {
	if s.ID == "" {
		return errors.New("created account missing id")
	}
	return nil
}

type operationSchema struct {
	OperationID string          `json:"operation_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (s operationSchema) validate() error {
	if s.OperationID == "" {
		return errors.New("operation missing operation_id")
	}
	if s.Type == "" {
		return errors.New("operation missing type")
	}
	if s.CreatedAt.IsZero() {
		return errors.New("operation missing created_at")
	}
	return nil
}

type walletSchema struct {
	Balance    decimal.Decimal   `json:"balance"`
	Operations []operationSchema `json:"operations"`
}

func (s walletSchema) validate() error {
	for i, op := range s.Operations {
		if err := op.validate(); err != nil {
			return fmt.Errorf("operations[%d]: %w", i, err)
		}
	}
	return nil
}

func (s walletSchema) toDomain() domain.Wallet {
	operations := make([]domain.Operation, 0, len(s.Operations))
	for _, op := range s.Operations {
		operations = append(operations, domain.Operation{
			OperationID: op.OperationID,
			Type:        domain.OperationType(op.Type),
			Amount:      op.Amount,
			CreatedAt:   op.CreatedAt,
		})
	}
	return domain.Wallet{Balance: s.Balance, Operations: operations}
}

type investmentSchema struct {
	InvestmentID string          `json:"investment_id"`
	Amount       decimal.Decimal `json:"amount"`
	AssetName    string          `json:"asset_name"`
	AssetType    string          `json:"asset_type"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (s investmentSchema) validate() error {
	if s.InvestmentID == "" {
		return errors.New("investment missing investment_id")
	}
	if s.CreatedAt.IsZero() {
		return errors.New("investment missing created_at")
	}
	return nil
}

type investmentsResponseSchema struct {
	Content []investmentSchema `json:"content"`
}

func (s investmentsResponseSchema) validate() error {
	for i, inv := range s.Content {
		if err := inv.validate(); err != nil {
			return fmt.Errorf("content[%d]: %w", i, err)
		}
	}
	return nil
}

type assetSchema struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	AssetType    string          `json:"asset_type"`
	CurrentPrice decimal.Decimal `json:"current_price"`
}

func (s assetSchema) validate() error {
	if s.ID == "" {
		return errors.New("asset missing id")
	}
	if s.Name == "" {
		return errors.New("asset missing name")
	}
	return nil
}

type assetsResponseSchema struct {
	Content []assetSchema `json:"content"`
}

func (s assetsResponseSchema) validate() error {
	for i, asset := range s.Content {
		if err := asset.validate(); err != nil {
			return fmt.Errorf("content[%d]: %w", i, err)
		}
	}
	return nil
}

type walletTransactionRequestSchema struct {
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type"`
}

type investmentRequestSchema struct {
	Amount        decimal.Decimal `json:"amount"`
	AssetName     string          `json:"asset_name"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}

func accountsToDomain(accounts []accountSchema) []domain.Account {
	result := make([]domain.Account, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, domain.Account{
			ID:   domain.AccountID(account.AccountID),
			Name: account.AccountName,
		})
	}
	return result
}

func investmentsToDomain(investments []investmentSchema) []domain.Investment {
	result := make([]domain.Investment, 0, len(investments))
	for _, inv := range investments {
		result = append(result, domain.Investment{
			InvestmentID: inv.InvestmentID,
			Amount:       inv.Amount,
			AssetName:    inv.AssetName,
			AssetType:    inv.AssetType,
			CreatedAt:    inv.CreatedAt,
		})
	}
	return result
}

func assetsToDomain(assets []assetSchema) []domain.Asset {
	result := make([]domain.Asset, 0, len(assets))
	for _, asset := range assets {
		result = append(result, domain.Asset{
			ID:           asset.ID,
			Name:         asset.Name,
			Symbol:       asset.Symbol,
			AssetType:    asset.AssetType,
			CurrentPrice: asset.CurrentPrice,
		})
	}
	return result
}

func createdAccountToDomain(s createAccountResponseSchema) ports.CreatedAccount {
	return ports.CreatedAccount{
		ID:        domain.AccountID(s.ID),
		Name:      s.Name,
		Balance:   s.Balance,
		CreatedAt: s.CreatedAt,
	}
}
