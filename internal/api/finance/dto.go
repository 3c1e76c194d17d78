package finance

type CreateTransactionRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description"`
	Wallet      string  `json:"wallet" validate:"required"`
}

type UpdateTransactionRequest struct {
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
	Type        *string  `json:"type" validate:"omitempty,oneof=income expense"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Wallet      *string  `json:"wallet"`
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Wallet      string  `json:"wallet"`
	Timestamp   string  `json:"timestamp"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalIncome  float64               `json:"total_income"`
	TotalExpense float64               `json:"total_expense"`
	Balance      float64               `json:"balance"`
}

type CreateWalletRequest struct {
	Name    string  `json:"name" validate:"required"`
	Balance float64 `json:"balance"`
}

type UpdateWalletRequest struct {
	Name    string  `json:"name" validate:"required"`
	Balance float64 `json:"balance"`
}

type WalletResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	BaseBalance      float64 `json:"base_balance"`
	EffectiveBalance float64 `json:"effective_balance"`
	Color            string  `json:"color"`
}

type WalletListResponse struct {
	Wallets      []WalletResponse `json:"wallets"`
	TotalBalance float64          `json:"total_balance"`
}

type UpsertBudgetRequest struct {
	Category string  `json:"category" validate:"required"`
	Limit    float64 `json:"limit" validate:"gte=0"`
}

type BudgetResponse struct {
	Category   string  `json:"category"`
	Limit      float64 `json:"limit"`
	Spent      float64 `json:"spent"`
	IsOver     bool    `json:"is_over"`
	Percentage float64 `json:"percentage"`
}

type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type CategoryListResponse struct {
	Categories []string `json:"categories"`
}
