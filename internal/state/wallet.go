package state

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"duitai/internal/api/finance"
	"duitai/internal/entity"
)

// AddWallet creates a wallet with the next color from the display palette.
// Names are unique case-insensitively because transactions reference wallets
// by name.
func (c *Controller) AddWallet(ctx context.Context, name string, balance float64) (entity.Wallet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	name = strings.TrimSpace(name)
	if _, found := c.findWallet(name); found {
		return entity.Wallet{}, finance.ErrWalletAlreadyExists
	}

	id, err := c.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.Wallet{}, err
	}

	wallet := entity.Wallet{
		ID:      id,
		Name:    name,
		Balance: balance,
		Color:   entity.WalletColors[len(c.wallets)%len(entity.WalletColors)],
	}

	if err := wallet.Validate(); err != nil {
		return entity.Wallet{}, err
	}

	c.wallets = append(c.wallets, wallet)
	if err := c.store.SaveWallets(ctx, c.wallets); err != nil {
		return entity.Wallet{}, err
	}

	return wallet, nil
}

// UpdateWallet edits a wallet's name and base balance. A rename rewrites the
// wallet reference on every matching transaction; the protected wallet keeps
// its name.
func (c *Controller) UpdateWallet(ctx context.Context, id, name string, balance float64) (entity.Wallet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i := range c.wallets {
		if c.wallets[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return entity.Wallet{}, finance.ErrWalletNotFound
	}

	name = strings.TrimSpace(name)
	oldName := c.wallets[idx].Name
	renamed := !strings.EqualFold(oldName, name)

	if renamed {
		if c.wallets[idx].IsProtected() {
			return entity.Wallet{}, finance.ErrProtectedWallet
		}
		if _, found := c.findWallet(name); found {
			return entity.Wallet{}, finance.ErrWalletAlreadyExists
		}
	}

	updated := c.wallets[idx]
	updated.Name = name
	updated.Balance = balance

	if err := updated.Validate(); err != nil {
		return entity.Wallet{}, err
	}

	c.wallets[idx] = updated
	if err := c.store.SaveWallets(ctx, c.wallets); err != nil {
		return entity.Wallet{}, err
	}

	if renamed {
		// EqualFold, not ==: imported snapshots may reference the wallet
		// with different casing than the wallet record itself.
		for i := range c.transactions {
			if strings.EqualFold(c.transactions[i].Wallet, oldName) {
				c.transactions[i].Wallet = name
			}
		}
		if err := c.store.SaveTransactions(ctx, c.transactions); err != nil {
			return entity.Wallet{}, err
		}

		c.log.WithFields(logrus.Fields{
			"wallet_id": id,
			"old_name":  oldName,
			"new_name":  name,
		}).Info("Wallet renamed, transactions rewritten")
	}

	return updated, nil
}

// DeleteWallet removes a wallet. The protected wallet is always refused.
// Transactions referencing the deleted wallet are kept; they simply stop
// counting toward any wallet balance.
func (c *Controller) DeleteWallet(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return finance.ErrConfirmationRequired
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.wallets {
		if c.wallets[i].ID == id {
			if c.wallets[i].IsProtected() {
				return finance.ErrProtectedWallet
			}
			c.wallets = append(c.wallets[:i], c.wallets[i+1:]...)
			return c.store.SaveWallets(ctx, c.wallets)
		}
	}

	return finance.ErrWalletNotFound
}
