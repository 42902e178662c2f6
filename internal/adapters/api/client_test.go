package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ffdias/fincli/internal/domain"
	"github.com/ffdias/fincli/internal/ports"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginDecodesTokenUserAndAccounts(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "login must not carry a bearer token")

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@example.com", body["email"])

		_, _ = w.Write([]byte(`{
			"token": "tok-123",
			"user": {"name": "Ana", "document": "123", "phoneNumber": "11999", "birthDate": "1990-04-12", "email": "ana@example.com", "investorLevel": "MODERADO"},
			"accounts": [{"account_id": "acc-1", "account_name": "Corrente"}]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)
	result, err := client.Login(context.Background(), domain.Credentials{Email: "ana@example.com", Password: "secret123"})
	require.NoError(t, err)

	assert.Equal(t, "tok-123", result.Token)
	assert.Equal(t, domain.InvestorLevelModerate, result.User.InvestorLevel)
	require.Len(t, result.Accounts, 1)
	assert.Equal(t, domain.AccountID("acc-1"), result.Accounts[0].ID)
}

func TestWalletAttachesBearerTokenAndDecodes(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/accounts/acc-1/wallet", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{
			"balance": 1520.75,
			"operations": [
				{"operation_id": "op-1", "type": "deposit", "amount": 100.5, "created_at": "2026-03-10T09:00:00Z"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)
	wallet, err := client.Wallet(context.Background(), "tok-123", "acc-1")
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("1520.75").Equal(wallet.Balance))
	require.Len(t, wallet.Operations, 1)
	assert.Equal(t, domain.OperationDeposit, wallet.Operations[0].Type)
	assert.True(t, decimal.RequireFromString("100.5").Equal(wallet.Operations[0].Amount))
}

func TestInvestmentsUnwrapContent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/accounts/acc-1/investments", r.URL.Path)
		_, _ = w.Write([]byte(`{"content": [
			{"investment_id": "inv-1", "amount": 250, "asset_name": "PETR4", "asset_type": "STOCK", "created_at": "2026-03-11T10:00:00Z"}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)
	investments, err := client.Investments(context.Background(), "tok-123", "acc-1")
	require.NoError(t, err)

	require.Len(t, investments, 1)
	assert.Equal(t, "inv-1", investments[0].InvestmentID)
	assert.Equal(t, "PETR4", investments[0].AssetName)
}

func TestNonSuccessStatusIsFetchError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)
	_, err := client.Wallet(context.Background(), "bad-token", "acc-1")

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusUnauthorized, fetchErr.Status)
	assert.Equal(t, "/accounts/acc-1/wallet", fetchErr.Path)
}

func TestSuccessBodyWithBadShapeIsShapeError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>oops</html>`},
		{name: "missing operation id", body: `{"balance": 10, "operations": [{"type": "deposit", "amount": 1, "created_at": "2026-03-10T09:00:00Z"}]}`},
		{name: "missing created_at", body: `{"balance": 10, "operations": [{"operation_id": "op-1", "type": "deposit", "amount": 1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, nil, nil)
			_, err := client.Wallet(context.Background(), "tok", "acc-1")

			var shapeErr *ShapeError
			require.ErrorAs(t, err, &shapeErr)
		})
	}
}

func TestPostWalletTransactionBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/accounts/acc-1/wallet/transactions", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "withdraw", body["type"])
		assert.InDelta(t, 55.5, body["amount"], 0.0001)

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)
	err := client.PostWalletTransaction(context.Background(), "tok", "acc-1", ports.WalletTransaction{
		Amount: decimal.RequireFromString("55.5"),
		Type:   domain.OperationWithdraw,
	})
	require.NoError(t, err)
}

func TestPostInvestmentBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/accounts/acc-1/investments", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "PETR4", body["asset_name"])
		assert.InDelta(t, 38.42, body["purchase_price"], 0.0001)

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)
	err := client.PostInvestment(context.Background(), "tok", "acc-1", ports.InvestmentOrder{
		Amount:        decimal.NewFromInt(200),
		AssetName:     "PETR4",
		PurchasePrice: decimal.RequireFromString("38.42"),
	})
	require.NoError(t, err)
}

func TestAssetsDecodesCatalog(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/assets", r.URL.Path)
		_, _ = w.Write([]byte(`{"content": [
			{"id": "asset-1", "name": "Petrobras", "symbol": "PETR4", "asset_type": "STOCK", "current_price": 38.42}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)
	assets, err := client.Assets(context.Background(), "tok")
	require.NoError(t, err)

	require.Len(t, assets, 1)
	assert.Equal(t, "asset-1", assets[0].ID)
	assert.True(t, decimal.RequireFromString("38.42").Equal(assets[0].CurrentPrice))
}
