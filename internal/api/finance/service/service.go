package financeService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"duitai/internal/api/finance"
	"duitai/internal/state"
)

type IFinanceService interface {
	ListTransactions(ctx context.Context) (finance.TransactionListResponse, error)
	CreateTransaction(ctx context.Context, req finance.CreateTransactionRequest) (finance.TransactionResponse, error)
	UpdateTransaction(ctx context.Context, id string, req finance.UpdateTransactionRequest) (finance.TransactionResponse, error)
	DeleteTransaction(ctx context.Context, id string, confirmed bool) error

	ListWallets(ctx context.Context) (finance.WalletListResponse, error)
	CreateWallet(ctx context.Context, req finance.CreateWalletRequest) (finance.WalletResponse, error)
	UpdateWallet(ctx context.Context, id string, req finance.UpdateWalletRequest) (finance.WalletResponse, error)
	DeleteWallet(ctx context.Context, id string, confirmed bool) error

	ListBudgets(ctx context.Context) (finance.BudgetListResponse, error)
	UpsertBudget(ctx context.Context, req finance.UpsertBudgetRequest) (finance.BudgetResponse, error)

	ListCategories(ctx context.Context) (finance.CategoryListResponse, error)
	CreateCategory(ctx context.Context, req finance.CreateCategoryRequest) error
	DeleteCategory(ctx context.Context, name string, confirmed bool) error
}

type financeService struct {
	log   *logrus.Logger
	state *state.Controller
}

func New(log *logrus.Logger, stateController *state.Controller) IFinanceService {
	return &financeService{
		log:   log,
		state: stateController,
	}
}
