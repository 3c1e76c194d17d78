package entity

import (
	"duitai/internal/api/finance"
	"time"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func IsValidTransactionType(transactionType string) bool {
	switch TransactionType(transactionType) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// Transaction references its wallet by NAME, not by id. Renaming a wallet
// therefore cascades a string rewrite over every matching transaction.
type Transaction struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Wallet      string    `json:"wallet"`
	Timestamp   time.Time `json:"timestamp"`
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return finance.ErrInvalidTransactionType
	}

	if t.Amount < 0 {
		return finance.ErrInvalidAmount
	}

	return nil
}
