package financeService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"duitai/internal/api/finance"
	"duitai/internal/entity"
	"duitai/internal/ledger"
	"duitai/internal/state"
	contextPkg "duitai/pkg/context"
)

func (s *financeService) ListTransactions(ctx context.Context) (finance.TransactionListResponse, error) {
	transactions := s.state.Transactions()
	totalIncome, totalExpense := ledger.Totals(transactions)

	responses := make([]finance.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, transactionResponse(transaction))
	}

	return finance.TransactionListResponse{
		Transactions: responses,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome - totalExpense,
	}, nil
}

func (s *financeService) CreateTransaction(ctx context.Context, req finance.CreateTransactionRequest) (finance.TransactionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	transaction, err := s.state.AddTransaction(ctx, req.Amount, req.Type, req.Category, req.Description, req.Wallet)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to add transaction")
		return finance.TransactionResponse{}, err
	}

	return transactionResponse(transaction), nil
}

func (s *financeService) UpdateTransaction(ctx context.Context, id string, req finance.UpdateTransactionRequest) (finance.TransactionResponse, error) {
	transaction, err := s.state.UpdateTransaction(ctx, id, state.TransactionUpdate{
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Wallet:      req.Wallet,
	})
	if err != nil {
		return finance.TransactionResponse{}, err
	}

	return transactionResponse(transaction), nil
}

func (s *financeService) DeleteTransaction(ctx context.Context, id string, confirmed bool) error {
	return s.state.DeleteTransaction(ctx, id, confirmed)
}

func (s *financeService) ListWallets(ctx context.Context) (finance.WalletListResponse, error) {
	wallets := s.state.Wallets()
	transactions := s.state.Transactions()

	responses := make([]finance.WalletResponse, 0, len(wallets))
	for _, wallet := range wallets {
		responses = append(responses, walletResponse(wallet, transactions))
	}

	return finance.WalletListResponse{
		Wallets:      responses,
		TotalBalance: ledger.TotalBalance(wallets, transactions),
	}, nil
}

func (s *financeService) CreateWallet(ctx context.Context, req finance.CreateWalletRequest) (finance.WalletResponse, error) {
	wallet, err := s.state.AddWallet(ctx, req.Name, req.Balance)
	if err != nil {
		return finance.WalletResponse{}, err
	}

	return walletResponse(wallet, s.state.Transactions()), nil
}

func (s *financeService) UpdateWallet(ctx context.Context, id string, req finance.UpdateWalletRequest) (finance.WalletResponse, error) {
	wallet, err := s.state.UpdateWallet(ctx, id, req.Name, req.Balance)
	if err != nil {
		return finance.WalletResponse{}, err
	}

	return walletResponse(wallet, s.state.Transactions()), nil
}

func (s *financeService) DeleteWallet(ctx context.Context, id string, confirmed bool) error {
	return s.state.DeleteWallet(ctx, id, confirmed)
}

func (s *financeService) ListBudgets(ctx context.Context) (finance.BudgetListResponse, error) {
	budgets := s.state.Budgets()
	transactions := s.state.Transactions()

	responses := make([]finance.BudgetResponse, 0, len(budgets))
	for _, budget := range budgets {
		responses = append(responses, budgetResponse(budget.Category, transactions, budgets))
	}

	return finance.BudgetListResponse{Budgets: responses}, nil
}

func (s *financeService) UpsertBudget(ctx context.Context, req finance.UpsertBudgetRequest) (finance.BudgetResponse, error) {
	budget, err := s.state.UpsertBudget(ctx, req.Category, req.Limit)
	if err != nil {
		return finance.BudgetResponse{}, err
	}

	return budgetResponse(budget.Category, s.state.Transactions(), s.state.Budgets()), nil
}

func (s *financeService) ListCategories(ctx context.Context) (finance.CategoryListResponse, error) {
	return finance.CategoryListResponse{Categories: s.state.Categories()}, nil
}

func (s *financeService) CreateCategory(ctx context.Context, req finance.CreateCategoryRequest) error {
	return s.state.AddCategory(ctx, req.Name)
}

func (s *financeService) DeleteCategory(ctx context.Context, name string, confirmed bool) error {
	return s.state.DeleteCategory(ctx, name, confirmed)
}

func transactionResponse(transaction entity.Transaction) finance.TransactionResponse {
	return finance.TransactionResponse{
		ID:          transaction.ID,
		Amount:      transaction.Amount,
		Type:        transaction.Type,
		Category:    transaction.Category,
		Description: transaction.Description,
		Wallet:      transaction.Wallet,
		Timestamp:   transaction.Timestamp.Format(time.RFC3339),
	}
}

func walletResponse(wallet entity.Wallet, transactions []entity.Transaction) finance.WalletResponse {
	return finance.WalletResponse{
		ID:               wallet.ID,
		Name:             wallet.Name,
		BaseBalance:      wallet.Balance,
		EffectiveBalance: ledger.EffectiveBalance(wallet, transactions),
		Color:            wallet.Color,
	}
}

func budgetResponse(category string, transactions []entity.Transaction, budgets []entity.Budget) finance.BudgetResponse {
	consumption := ledger.ConsumeBudget(category, transactions, budgets)

	return finance.BudgetResponse{
		Category:   consumption.Category,
		Limit:      consumption.Limit,
		Spent:      consumption.Spent,
		IsOver:     consumption.IsOver,
		Percentage: consumption.Percentage,
	}
}
