package state

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"duitai/internal/api/finance"
	"duitai/internal/entity"
	"duitai/pkg/nlp"
)

// TransactionUpdate carries the fields of a partial edit. Nil means keep the
// stored value.
type TransactionUpdate struct {
	Amount      *float64
	Type        *string
	Category    *string
	Description *string
	Wallet      *string
}

// RecordParsedTransaction turns a successful parser draft into a stored
// transaction. The wallet reference is resolved case-insensitively and falls
// back to the protected wallet when unknown; the category is re-checked
// against the live list and clamped to the catch-all so a parser can never
// introduce a category the user does not have. The returned flag reports
// whether the wallet fallback happened.
func (c *Controller) RecordParsedTransaction(ctx context.Context, draft nlp.Draft) (entity.Transaction, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	wallet, fellBack := c.resolveWallet(draft.Wallet)
	category := c.clampCategory(draft.Category)

	id, err := c.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.Transaction{}, false, err
	}

	transaction := entity.Transaction{
		ID:          id,
		Amount:      draft.Amount,
		Type:        draft.Type,
		Category:    category,
		Description: draft.Description,
		Wallet:      wallet,
		Timestamp:   time.Now(),
	}

	if err := transaction.Validate(); err != nil {
		return entity.Transaction{}, false, err
	}

	c.transactions = append(c.transactions, transaction)
	if err := c.store.SaveTransactions(ctx, c.transactions); err != nil {
		return entity.Transaction{}, false, err
	}

	c.log.WithFields(logrus.Fields{
		"transaction_id": transaction.ID,
		"wallet":         transaction.Wallet,
		"category":       transaction.Category,
	}).Info("Recorded parsed transaction")

	return transaction, fellBack, nil
}

// AddTransaction stores a manually entered transaction. The id and timestamp
// are assigned here. The stored wallet reference is canonicalized to the
// wallet's own casing so the rename cascade always finds it.
func (c *Controller) AddTransaction(ctx context.Context, amount float64, transactionType, category, description, walletName string) (entity.Transaction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	wallet, found := c.findWallet(walletName)
	if !found {
		return entity.Transaction{}, finance.ErrWalletNotFound
	}

	id, err := c.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.Transaction{}, err
	}

	transaction := entity.Transaction{
		ID:          id,
		Amount:      amount,
		Type:        transactionType,
		Category:    c.clampCategory(category),
		Description: description,
		Wallet:      wallet.Name,
		Timestamp:   time.Now(),
	}

	if err := transaction.Validate(); err != nil {
		return entity.Transaction{}, err
	}

	c.transactions = append(c.transactions, transaction)
	if err := c.store.SaveTransactions(ctx, c.transactions); err != nil {
		return entity.Transaction{}, err
	}

	return transaction, nil
}

func (c *Controller) UpdateTransaction(ctx context.Context, id string, update TransactionUpdate) (entity.Transaction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i := range c.transactions {
		if c.transactions[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return entity.Transaction{}, finance.ErrTransactionNotFound
	}

	updated := c.transactions[idx]
	if update.Amount != nil {
		updated.Amount = *update.Amount
	}
	if update.Type != nil {
		updated.Type = *update.Type
	}
	if update.Category != nil {
		updated.Category = c.clampCategory(*update.Category)
	}
	if update.Description != nil {
		updated.Description = *update.Description
	}
	if update.Wallet != nil {
		wallet, found := c.findWallet(*update.Wallet)
		if !found {
			return entity.Transaction{}, finance.ErrWalletNotFound
		}
		updated.Wallet = wallet.Name
	}

	if err := updated.Validate(); err != nil {
		return entity.Transaction{}, err
	}

	c.transactions[idx] = updated
	if err := c.store.SaveTransactions(ctx, c.transactions); err != nil {
		return entity.Transaction{}, err
	}

	return updated, nil
}

// DeleteTransaction removes a transaction by id. The caller must signal that
// the user confirmed the deletion.
func (c *Controller) DeleteTransaction(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return finance.ErrConfirmationRequired
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.transactions {
		if c.transactions[i].ID == id {
			c.transactions = append(c.transactions[:i], c.transactions[i+1:]...)
			return c.store.SaveTransactions(ctx, c.transactions)
		}
	}

	return finance.ErrTransactionNotFound
}

// resolveWallet maps a parser wallet reference onto an existing wallet name.
// Empty or unknown references land in the protected wallet; only an unknown
// non-empty reference counts as a fallback worth warning about.
func (c *Controller) resolveWallet(name string) (string, bool) {
	if name == "" {
		return entity.ProtectedWalletName, false
	}

	if wallet, found := c.findWallet(name); found {
		return wallet.Name, false
	}

	return entity.ProtectedWalletName, true
}

func (c *Controller) findWallet(name string) (entity.Wallet, bool) {
	for i := range c.wallets {
		if c.wallets[i].NameMatches(name) {
			return c.wallets[i], true
		}
	}
	return entity.Wallet{}, false
}

func (c *Controller) clampCategory(category string) string {
	for _, existing := range c.categories {
		if strings.EqualFold(existing, category) {
			return existing
		}
	}
	return entity.ProtectedCategoryName
}
