package storage

import (
	"context"

	"duitai/internal/entity"
)

// IStore persists the application state as independent slices. Loads of a key
// that was never written return the zero value, not an error, so callers can
// seed defaults on first run.
type IStore interface {
	LoadTransactions(ctx context.Context) ([]entity.Transaction, error)
	SaveTransactions(ctx context.Context, transactions []entity.Transaction) error

	LoadWallets(ctx context.Context) ([]entity.Wallet, error)
	SaveWallets(ctx context.Context, wallets []entity.Wallet) error

	LoadBudgets(ctx context.Context) ([]entity.Budget, error)
	SaveBudgets(ctx context.Context, budgets []entity.Budget) error

	LoadCategories(ctx context.Context) ([]string, error)
	SaveCategories(ctx context.Context, categories []string) error

	LoadMessages(ctx context.Context) ([]entity.ChatMessage, error)
	SaveMessages(ctx context.Context, messages []entity.ChatMessage) error

	LoadFirstDayOfMonth(ctx context.Context) (int, error)
	SaveFirstDayOfMonth(ctx context.Context, day int) error

	LoadAPIKey(ctx context.Context) (string, error)
	SaveAPIKey(ctx context.Context, apiKey string) error
	DeleteAPIKey(ctx context.Context) error
}
