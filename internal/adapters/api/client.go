// Package api is the typed HTTP client for the finance backend. Every
// call issues exactly one request, attaches the bearer token on
// protected routes, and validates the response body shape before
// handing it to the caller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ffdias/fincli/internal/domain"
	"github.com/ffdias/fincli/internal/ports"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// The backend exchanges amounts as JSON numbers, not strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type validator interface {
	validate() error
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

var _ ports.Gateway = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log,
	}
}

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (ports.LoginResult, error) {
	var resp loginResponseSchema
	body := loginRequestSchema{Email: creds.Email, Password: creds.Password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &resp); err != nil {
		return ports.LoginResult{}, err
	}

	return ports.LoginResult{
		Token:    resp.Token,
		User:     resp.User.toDomain(),
		Accounts: accountsToDomain(resp.Accounts),
	}, nil
}

func (c *Client) Register(ctx context.Context, form domain.SignupForm) (domain.User, error) {
	var resp userSchema
	body := registerRequestSchema{
		Name:          form.Name,
		Document:      form.Document,
		PhoneNumber:   form.PhoneNumber,
		BirthDate:     form.BirthDate,
		Email:         form.Email,
		Password:      form.Password,
		InvestorLevel: string(form.InvestorLevel),
	}
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", body, &resp); err != nil {
		return domain.User{}, err
	}

	return resp.toDomain(), nil
}

func (c *Client) CreateAccount(ctx context.Context, token, name string, accountType domain.AccountType) (ports.CreatedAccount, error) {
	var resp createAccountResponseSchema
	body := createAccountRequestSchema{Name: name, AccountType: string(accountType)}
	if err := c.do(ctx, http.MethodPost, "/accounts", token, body, &resp); err != nil {
		return ports.CreatedAccount{}, err
	}

	return createdAccountToDomain(resp), nil
}

func (c *Client) Wallet(ctx context.Context, token string, accountID domain.AccountID) (domain.Wallet, error) {
	var resp walletSchema
	path := fmt.Sprintf("/accounts/%s/wallet", accountID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return domain.Wallet{}, err
	}

	return resp.toDomain(), nil
}

func (c *Client) Investments(ctx context.Context, token string, accountID domain.AccountID) ([]domain.Investment, error) {
	var resp investmentsResponseSchema
	path := fmt.Sprintf("/accounts/%s/investments", accountID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}

	return investmentsToDomain(resp.Content), nil
}

func (c *Client) Assets(ctx context.Context, token string) ([]domain.Asset, error) {
	var resp assetsResponseSchema
	if err := c.do(ctx, http.MethodGet, "/assets", token, nil, &resp); err != nil {
		return nil, err
	}

	return assetsToDomain(resp.Content), nil
}

func (c *Client) PostWalletTransaction(ctx context.Context, token string, accountID domain.AccountID, tx ports.WalletTransaction) error {
	path := fmt.Sprintf("/accounts/%s/wallet/transactions", accountID)
	body := walletTransactionRequestSchema{Amount: tx.Amount, Type: string(tx.Type)}
	return c.do(ctx, http.MethodPost, path, token, body, nil)
}

func (c *Client) PostInvestment(ctx context.Context, token string, accountID domain.AccountID, order ports.InvestmentOrder) error {
	path := fmt.Sprintf("/accounts/%s/investments", accountID)
	body := investmentRequestSchema{
		Amount:        order.Amount,
		AssetName:     order.AssetName,
		PurchasePrice: order.PurchasePrice,
	}
	return c.do(ctx, http.MethodPost, path, token, body, nil)
}

// do issues a single request. A non-2xx status is a *FetchError; a 2xx
// body that fails shape validation is a *ShapeError.
func (c *Client) do(ctx context.Context, method, path, token string, body any, out validator) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = response.Body.Close() }()

	c.log.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", response.StatusCode))

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return &FetchError{Method: method, Path: path, Status: response.StatusCode}
	}
	if out == nil {
		return nil
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &ShapeError{Path: path, Err: err}
	}
	if err := out.validate(); err != nil {
		return &ShapeError{Path: path, Err: err}
	}

	return nil
}
