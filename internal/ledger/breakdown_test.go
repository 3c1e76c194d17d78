package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"duitai/internal/entity"
)

func TestCategoryBreakdown(t *testing.T) {
	transactions := []entity.Transaction{
		tx(10000, entity.TransactionTypeExpense, "Makanan & Minuman", "Utama"),
		tx(40000, entity.TransactionTypeExpense, "Transportasi", "Utama"),
		tx(25000, entity.TransactionTypeExpense, "Makanan & Minuman", "Utama"),
		tx(5000000, entity.TransactionTypeIncome, "Gaji & Bonus", "Utama"),
	}

	breakdown := CategoryBreakdown(transactions, entity.TransactionTypeExpense)

	assert.Equal(t, []CategoryTotal{
		{Category: "Transportasi", Total: 40000},
		{Category: "Makanan & Minuman", Total: 35000},
	}, breakdown)
}

func TestCategoryBreakdownTieBreakKeepsFirstOccurrenceOrder(t *testing.T) {
	transactions := []entity.Transaction{
		tx(20000, entity.TransactionTypeExpense, "Belanja", "Utama"),
		tx(20000, entity.TransactionTypeExpense, "Hiburan", "Utama"),
		tx(20000, entity.TransactionTypeExpense, "Transportasi", "Utama"),
	}

	breakdown := CategoryBreakdown(transactions, entity.TransactionTypeExpense)

	assert.Equal(t, []CategoryTotal{
		{Category: "Belanja", Total: 20000},
		{Category: "Hiburan", Total: 20000},
		{Category: "Transportasi", Total: 20000},
	}, breakdown)
}

func TestCategoryBreakdownSumsToTypeTotal(t *testing.T) {
	transactions := []entity.Transaction{
		tx(12500, entity.TransactionTypeExpense, "Makanan & Minuman", "Utama"),
		tx(7300, entity.TransactionTypeExpense, "Transportasi", "Jajan"),
		tx(880000, entity.TransactionTypeExpense, "Tagihan & Pulsa", "Utama"),
		tx(1000000, entity.TransactionTypeIncome, "Gaji & Bonus", "Utama"),
	}

	var sum float64
	for _, item := range CategoryBreakdown(transactions, entity.TransactionTypeExpense) {
		sum += item.Total
	}

	_, totalExpense := Totals(transactions)
	assert.Equal(t, totalExpense, sum)
}

func TestCategoryBreakdownEmpty(t *testing.T) {
	assert.Empty(t, CategoryBreakdown(nil, entity.TransactionTypeExpense))
}
