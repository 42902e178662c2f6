package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ffdias/fincli/internal/adapters/api"
	dashboardadapter "github.com/ffdias/fincli/internal/adapters/render/dashboard"
	tomlrepo "github.com/ffdias/fincli/internal/adapters/repo/toml"
	"github.com/ffdias/fincli/internal/application"
	"github.com/ffdias/fincli/internal/cache"
	"github.com/ffdias/fincli/internal/logging"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	sessions          *application.Service
	wallets           *application.WalletService
	transactions      *application.TransactionService
	dashboardRenderer func(application.DashboardView, dashboardadapter.RenderOptions) (string, error)
	log               *zap.Logger
}

func wireApp() (*app, error) {
	log, err := buildLogger()
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	repo, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	gateway := api.NewClient(envOrDefault("FIN_API_URL", "http://localhost:3000"), nil, log)

	sessions, err := application.NewService(context.Background(), repo, gateway, log)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	store := cache.New(log)
	wallets := application.NewWalletService(sessions, gateway, store)

	return &app{
		sessions:          sessions,
		wallets:           wallets,
		transactions:      application.NewTransactionService(sessions, wallets, gateway, store, log),
		dashboardRenderer: dashboardadapter.Render,
		log:               log,
	}, nil
}

func buildLogger() (*zap.Logger, error) {
	config := logging.DefaultConfig()
	if level := os.Getenv("FIN_LOG"); level != "" {
		config.Level = level
	}

	return logging.New(config)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
