// Package ledger holds the derived-financials computations shared by the
// dashboard, wallet, budget and report surfaces. Everything in here is a pure
// function over a snapshot of state: no clock reads, no I/O, deterministic for
// identical inputs.
package ledger

import "duitai/internal/entity"

// EffectiveBalance derives the live balance of a wallet: its base balance plus
// matching income minus matching expense. Transactions match on wallet NAME,
// case-insensitively, so a not-yet-cascaded rename changes what matches.
func EffectiveBalance(wallet entity.Wallet, transactions []entity.Transaction) float64 {
	balance := wallet.Balance

	for _, t := range transactions {
		if !wallet.NameMatches(t.Wallet) {
			continue
		}

		switch entity.TransactionType(t.Type) {
		case entity.TransactionTypeIncome:
			balance += t.Amount
		case entity.TransactionTypeExpense:
			balance -= t.Amount
		}
	}

	return balance
}

// TotalBalance sums the effective balances of all wallets for the dashboard
// summary card.
func TotalBalance(wallets []entity.Wallet, transactions []entity.Transaction) float64 {
	var total float64
	for _, w := range wallets {
		total += EffectiveBalance(w, transactions)
	}

	return total
}

// Totals partitions transaction amounts into income and expense sums.
func Totals(transactions []entity.Transaction) (totalIncome, totalExpense float64) {
	for _, t := range transactions {
		switch entity.TransactionType(t.Type) {
		case entity.TransactionTypeIncome:
			totalIncome += t.Amount
		case entity.TransactionTypeExpense:
			totalExpense += t.Amount
		}
	}

	return totalIncome, totalExpense
}
