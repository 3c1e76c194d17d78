package ledger

import "duitai/internal/entity"

// BudgetConsumption is the derived view of one category budget.
type BudgetConsumption struct {
	Category   string  `json:"category"`
	Spent      float64 `json:"spent"`
	Limit      float64 `json:"limit"`
	IsOver     bool    `json:"is_over"`
	Percentage float64 `json:"percentage"`
}

// ConsumeBudget computes how much of a category's budget is used up.
//
// Spent is the cumulative all-time expense total for the category, not a
// cycle-scoped one; budgets compare against lifetime spend while reports are
// cycle-scoped. Percentage is capped at 100 and defined as 0 when no limit is
// set, so an empty limit never divides by zero.
func ConsumeBudget(category string, transactions []entity.Transaction, budgets []entity.Budget) BudgetConsumption {
	var limit float64
	for _, b := range budgets {
		if b.Category == category {
			limit = b.Limit
			break
		}
	}

	var spent float64
	for _, t := range transactions {
		if entity.TransactionType(t.Type) == entity.TransactionTypeExpense && t.Category == category {
			spent += t.Amount
		}
	}

	consumption := BudgetConsumption{
		Category: category,
		Spent:    spent,
		Limit:    limit,
		IsOver:   limit > 0 && spent > limit,
	}

	if limit > 0 {
		consumption.Percentage = spent / limit * 100
		if consumption.Percentage > 100 {
			consumption.Percentage = 100
		}
	}

	return consumption
}
