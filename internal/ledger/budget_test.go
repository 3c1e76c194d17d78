package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"duitai/internal/entity"
)

func TestConsumeBudget(t *testing.T) {
	tests := []struct {
		name         string
		transactions []entity.Transaction
		budgets      []entity.Budget
		want         BudgetConsumption
	}{
		{
			name: "overspent budget caps percentage at 100",
			transactions: []entity.Transaction{
				tx(30000, entity.TransactionTypeExpense, "Food", "Main"),
			},
			budgets: []entity.Budget{{Category: "Food", Limit: 25000}},
			want: BudgetConsumption{
				Category:   "Food",
				Spent:      30000,
				Limit:      25000,
				IsOver:     true,
				Percentage: 100,
			},
		},
		{
			name: "partial consumption",
			transactions: []entity.Transaction{
				tx(20000, entity.TransactionTypeExpense, "Food", "Main"),
			},
			budgets: []entity.Budget{{Category: "Food", Limit: 80000}},
			want: BudgetConsumption{
				Category:   "Food",
				Spent:      20000,
				Limit:      80000,
				IsOver:     false,
				Percentage: 25,
			},
		},
		{
			name: "no limit set yields zero percentage and never over",
			transactions: []entity.Transaction{
				tx(50000, entity.TransactionTypeExpense, "Food", "Main"),
			},
			want: BudgetConsumption{Category: "Food", Spent: 50000},
		},
		{
			name: "income and other categories do not count as spend",
			transactions: []entity.Transaction{
				tx(100000, entity.TransactionTypeIncome, "Food", "Main"),
				tx(15000, entity.TransactionTypeExpense, "Transport", "Main"),
				tx(10000, entity.TransactionTypeExpense, "Food", "Main"),
			},
			budgets: []entity.Budget{{Category: "Food", Limit: 40000}},
			want: BudgetConsumption{
				Category:   "Food",
				Spent:      10000,
				Limit:      40000,
				IsOver:     false,
				Percentage: 25,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConsumeBudget("Food", tt.transactions, tt.budgets))
		})
	}
}
