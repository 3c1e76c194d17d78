package state

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"duitai/internal/entity"
	"duitai/internal/storage"
	"duitai/pkg/utils"
)

const welcomeMessageText = "Halo! Saya DuitAI. Ceritakan pengeluaran Anda, contoh: 'Makan siang 30rb dompet jajan'. Saya akan otomatis memotong saldo dompet tersebut! ✨"

// Controller is the single owner of the application state. All reads and
// mutations go through it; every mutation persists the touched slice before
// returning so the store never lags the in-memory state.
type Controller struct {
	mu    sync.Mutex
	log   *logrus.Logger
	store storage.IStore
	utils utils.IUtils

	transactions    []entity.Transaction
	wallets         []entity.Wallet
	budgets         []entity.Budget
	categories      []string
	messages        []entity.ChatMessage
	firstDayOfMonth int
	apiKey          string
}

func New(log *logrus.Logger, store storage.IStore, utils utils.IUtils) *Controller {
	return &Controller{
		log:   log,
		store: store,
		utils: utils,
	}
}

// Load hydrates the controller from the store and seeds defaults for any slice
// that was never written: the two starter wallets, the standard category list,
// cycle start on day 1 and the welcome message.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	if c.transactions, err = c.store.LoadTransactions(ctx); err != nil {
		return err
	}
	if c.wallets, err = c.store.LoadWallets(ctx); err != nil {
		return err
	}
	if c.budgets, err = c.store.LoadBudgets(ctx); err != nil {
		return err
	}
	if c.categories, err = c.store.LoadCategories(ctx); err != nil {
		return err
	}
	if c.messages, err = c.store.LoadMessages(ctx); err != nil {
		return err
	}
	if c.firstDayOfMonth, err = c.store.LoadFirstDayOfMonth(ctx); err != nil {
		return err
	}
	if c.apiKey, err = c.store.LoadAPIKey(ctx); err != nil {
		return err
	}

	if len(c.wallets) == 0 {
		c.wallets = entity.DefaultWallets()
		if err := c.store.SaveWallets(ctx, c.wallets); err != nil {
			return err
		}
	}

	if len(c.categories) == 0 {
		c.categories = entity.DefaultCategories()
		if err := c.store.SaveCategories(ctx, c.categories); err != nil {
			return err
		}
	}

	if c.firstDayOfMonth == 0 {
		c.firstDayOfMonth = 1
		if err := c.store.SaveFirstDayOfMonth(ctx, c.firstDayOfMonth); err != nil {
			return err
		}
	}

	if len(c.messages) == 0 {
		id, err := c.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return err
		}
		c.messages = []entity.ChatMessage{entity.NewBotMessage(id, welcomeMessageText, time.Now())}
		if err := c.store.SaveMessages(ctx, c.messages); err != nil {
			return err
		}
	}

	c.log.WithFields(logrus.Fields{
		"transactions": len(c.transactions),
		"wallets":      len(c.wallets),
		"categories":   len(c.categories),
		"messages":     len(c.messages),
	}).Info("Application state loaded")

	return nil
}

func (c *Controller) Transactions() []entity.Transaction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Transaction(nil), c.transactions...)
}

func (c *Controller) Wallets() []entity.Wallet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Wallet(nil), c.wallets...)
}

func (c *Controller) Budgets() []entity.Budget {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Budget(nil), c.budgets...)
}

func (c *Controller) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.categories...)
}

func (c *Controller) Messages() []entity.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.ChatMessage(nil), c.messages...)
}

func (c *Controller) FirstDayOfMonth() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.firstDayOfMonth
}

func (c *Controller) APIKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apiKey
}
