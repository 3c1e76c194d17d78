package state

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"duitai/internal/api/backup"
	"duitai/internal/api/finance"
	"duitai/internal/entity"
)

// ExportSnapshot bundles every state slice into a backup payload. The parser
// credential is deliberately excluded.
func (c *Controller) ExportSnapshot() entity.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return entity.Snapshot{
		Transactions:    append([]entity.Transaction(nil), c.transactions...),
		Wallets:         append([]entity.Wallet(nil), c.wallets...),
		Budgets:         append([]entity.Budget(nil), c.budgets...),
		Categories:      append([]string(nil), c.categories...),
		FirstDayOfMonth: c.firstDayOfMonth,
		Messages:        append([]entity.ChatMessage(nil), c.messages...),
		ExportDate:      time.Now(),
		Version:         entity.SnapshotVersion,
	}
}

// ImportSnapshot restores state from a backup payload. A file that is not
// valid JSON aborts with no state change; within a valid file each slice is
// applied independently and only when present and well-typed, so an older
// backup missing a slice keeps the current data for it.
func (c *Controller) ImportSnapshot(ctx context.Context, raw []byte, confirmed bool) error {
	if !confirmed {
		return finance.ErrConfirmationRequired
	}

	var fields map[string]jsoniter.RawMessage
	if err := jsoniter.Unmarshal(raw, &fields); err != nil {
		return backup.ErrMalformedBackup
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	applied := make([]string, 0, 6)

	if rawField, ok := fields["transactions"]; ok {
		var transactions []entity.Transaction
		if err := jsoniter.Unmarshal(rawField, &transactions); err == nil {
			c.transactions = transactions
			if err := c.store.SaveTransactions(ctx, c.transactions); err != nil {
				return err
			}
			applied = append(applied, "transactions")
		}
	}

	if rawField, ok := fields["wallets"]; ok {
		var wallets []entity.Wallet
		if err := jsoniter.Unmarshal(rawField, &wallets); err == nil {
			c.wallets = wallets
			if err := c.store.SaveWallets(ctx, c.wallets); err != nil {
				return err
			}
			applied = append(applied, "wallets")
		}
	}

	if rawField, ok := fields["budgets"]; ok {
		var budgets []entity.Budget
		if err := jsoniter.Unmarshal(rawField, &budgets); err == nil {
			c.budgets = budgets
			if err := c.store.SaveBudgets(ctx, c.budgets); err != nil {
				return err
			}
			applied = append(applied, "budgets")
		}
	}

	if rawField, ok := fields["categories"]; ok {
		var categories []string
		if err := jsoniter.Unmarshal(rawField, &categories); err == nil {
			c.categories = categories
			if err := c.store.SaveCategories(ctx, c.categories); err != nil {
				return err
			}
			applied = append(applied, "categories")
		}
	}

	if rawField, ok := fields["firstDayOfMonth"]; ok {
		var day int
		if err := jsoniter.Unmarshal(rawField, &day); err == nil && day >= 1 && day <= 31 {
			c.firstDayOfMonth = day
			if err := c.store.SaveFirstDayOfMonth(ctx, c.firstDayOfMonth); err != nil {
				return err
			}
			applied = append(applied, "firstDayOfMonth")
		}
	}

	if rawField, ok := fields["messages"]; ok {
		var messages []entity.ChatMessage
		if err := jsoniter.Unmarshal(rawField, &messages); err == nil {
			c.messages = messages
			if err := c.store.SaveMessages(ctx, c.messages); err != nil {
				return err
			}
			applied = append(applied, "messages")
		}
	}

	c.log.WithFields(logrus.Fields{
		"applied": applied,
	}).Info("Snapshot restored")

	return nil
}
