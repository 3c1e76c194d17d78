package financeService

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duitai/internal/api/finance"
	"duitai/internal/state"
	"duitai/internal/storage"
	"duitai/pkg/utils"
)

func newTestService(t *testing.T) IFinanceService {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	controller := state.New(log, storage.NewMemoryStore(), utils.New())
	require.NoError(t, controller.Load(context.Background()))

	return New(log, controller)
}

func TestTransactionListTotals(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.CreateTransaction(ctx, finance.CreateTransactionRequest{
		Amount: 5000000, Type: "income", Category: "Gaji & Bonus", Wallet: "Utama",
	})
	require.NoError(t, err)

	_, err = service.CreateTransaction(ctx, finance.CreateTransactionRequest{
		Amount: 30000, Type: "expense", Category: "Makanan & Minuman", Wallet: "Jajan",
	})
	require.NoError(t, err)

	res, err := service.ListTransactions(ctx)
	require.NoError(t, err)

	assert.Len(t, res.Transactions, 2)
	assert.Equal(t, float64(5000000), res.TotalIncome)
	assert.Equal(t, float64(30000), res.TotalExpense)
	assert.Equal(t, float64(4970000), res.Balance)
}

func TestWalletListEffectiveBalances(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	wallet, err := service.CreateWallet(ctx, finance.CreateWalletRequest{Name: "Tabungan", Balance: 1000000})
	require.NoError(t, err)
	assert.Equal(t, float64(1000000), wallet.EffectiveBalance)

	_, err = service.CreateTransaction(ctx, finance.CreateTransactionRequest{
		Amount: 250000, Type: "expense", Category: "Belanja", Wallet: "Tabungan",
	})
	require.NoError(t, err)

	res, err := service.ListWallets(ctx)
	require.NoError(t, err)
	require.Len(t, res.Wallets, 3)

	var tabungan finance.WalletResponse
	for _, w := range res.Wallets {
		if w.Name == "Tabungan" {
			tabungan = w
		}
	}
	assert.Equal(t, float64(1000000), tabungan.BaseBalance)
	assert.Equal(t, float64(750000), tabungan.EffectiveBalance)
	assert.Equal(t, float64(750000), res.TotalBalance)
}

func TestBudgetConsumptionThroughService(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.UpsertBudget(ctx, finance.UpsertBudgetRequest{Category: "Makanan & Minuman", Limit: 25000})
	require.NoError(t, err)

	_, err = service.CreateTransaction(ctx, finance.CreateTransactionRequest{
		Amount: 30000, Type: "expense", Category: "Makanan & Minuman", Wallet: "Jajan",
	})
	require.NoError(t, err)

	res, err := service.ListBudgets(ctx)
	require.NoError(t, err)
	require.Len(t, res.Budgets, 1)

	budget := res.Budgets[0]
	assert.Equal(t, float64(30000), budget.Spent)
	assert.True(t, budget.IsOver)
	assert.Equal(t, float64(100), budget.Percentage)
}

func TestCategoryLifecycle(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	require.NoError(t, service.CreateCategory(ctx, finance.CreateCategoryRequest{Name: "Investasi"}))

	res, err := service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Contains(t, res.Categories, "Investasi")

	assert.ErrorIs(t, service.DeleteCategory(ctx, "Investasi", false), finance.ErrConfirmationRequired)
	require.NoError(t, service.DeleteCategory(ctx, "Investasi", true))
}
