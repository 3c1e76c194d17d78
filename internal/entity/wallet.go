package entity

import (
	"duitai/internal/api/finance"
	"strings"
)

// ProtectedWalletName is the default wallet. It always exists, cannot be
// deleted and is the fallback target for unresolved wallet references.
const ProtectedWalletName = "Utama"

// WalletColors is the display palette cycled through when adding wallets.
var WalletColors = []string{
	"bg-blue-600",
	"bg-orange-500",
	"bg-purple-600",
	"bg-emerald-500",
	"bg-rose-500",
}

// Wallet carries the manually-set base balance. The live balance is derived
// from it plus matching transactions, see internal/ledger.
type Wallet struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
	Color   string  `json:"color"`
}

func (w *Wallet) IsProtected() bool {
	return strings.EqualFold(w.Name, ProtectedWalletName)
}

// NameMatches reports whether name refers to this wallet. Matching is
// case-insensitive on the wallet name.
func (w *Wallet) NameMatches(name string) bool {
	return strings.EqualFold(w.Name, name)
}

func (w *Wallet) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return finance.ErrWalletNameRequired
	}

	return nil
}

func DefaultWallets() []Wallet {
	return []Wallet{
		{ID: "1", Name: ProtectedWalletName, Balance: 0, Color: "bg-blue-600"},
		{ID: "2", Name: "Jajan", Balance: 0, Color: "bg-orange-500"},
	}
}
