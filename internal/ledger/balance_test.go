package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"duitai/internal/entity"
)

func tx(amount float64, txType entity.TransactionType, category, wallet string) entity.Transaction {
	return entity.Transaction{
		ID:        "tx",
		Amount:    amount,
		Type:      string(txType),
		Category:  category,
		Wallet:    wallet,
		Timestamp: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestEffectiveBalance(t *testing.T) {
	wallet := entity.Wallet{ID: "1", Name: "Utama", Balance: 100000}

	tests := []struct {
		name         string
		transactions []entity.Transaction
		want         float64
	}{
		{
			name: "no transactions keeps base balance",
			want: 100000,
		},
		{
			name: "income adds and expense subtracts",
			transactions: []entity.Transaction{
				tx(50000, entity.TransactionTypeIncome, "Gaji & Bonus", "Utama"),
				tx(30000, entity.TransactionTypeExpense, "Makanan & Minuman", "Utama"),
			},
			want: 120000,
		},
		{
			name: "wallet name matches case-insensitively",
			transactions: []entity.Transaction{
				tx(25000, entity.TransactionTypeIncome, "Gaji & Bonus", "utama"),
				tx(10000, entity.TransactionTypeExpense, "Belanja", "UTAMA"),
			},
			want: 115000,
		},
		{
			name: "other wallets are ignored",
			transactions: []entity.Transaction{
				tx(999999, entity.TransactionTypeIncome, "Gaji & Bonus", "Jajan"),
				tx(5000, entity.TransactionTypeExpense, "Makanan & Minuman", "Utama"),
			},
			want: 95000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveBalance(wallet, tt.transactions))
		})
	}
}

func TestTotalBalance(t *testing.T) {
	wallets := []entity.Wallet{
		{ID: "1", Name: "Utama", Balance: 100000},
		{ID: "2", Name: "Jajan", Balance: 20000},
	}
	transactions := []entity.Transaction{
		tx(50000, entity.TransactionTypeIncome, "Gaji & Bonus", "Utama"),
		tx(15000, entity.TransactionTypeExpense, "Makanan & Minuman", "Jajan"),
	}

	assert.Equal(t, float64(155000), TotalBalance(wallets, transactions))
}

func TestTotals(t *testing.T) {
	transactions := []entity.Transaction{
		tx(5000000, entity.TransactionTypeIncome, "Gaji & Bonus", "Utama"),
		tx(30000, entity.TransactionTypeExpense, "Makanan & Minuman", "Utama"),
		tx(20000, entity.TransactionTypeExpense, "Transportasi", "Jajan"),
	}

	income, expense := Totals(transactions)
	assert.Equal(t, float64(5000000), income)
	assert.Equal(t, float64(50000), expense)
}

func TestTotalsEmpty(t *testing.T) {
	income, expense := Totals(nil)
	assert.Zero(t, income)
	assert.Zero(t, expense)
}
