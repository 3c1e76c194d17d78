package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duitai/internal/api/assistant"
	"duitai/internal/api/finance"
)

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{ID: "1", Amount: 30000, Type: "expense", Category: "Lainnya", Wallet: "Utama", Timestamp: time.Now()}
	assert.NoError(t, valid.Validate())

	badType := valid
	badType.Type = "transfer"
	assert.ErrorIs(t, badType.Validate(), finance.ErrInvalidTransactionType)

	negative := valid
	negative.Amount = -1
	assert.ErrorIs(t, negative.Validate(), finance.ErrInvalidAmount)
}

func TestWalletProtection(t *testing.T) {
	utama := Wallet{ID: "1", Name: "Utama"}
	assert.True(t, utama.IsProtected())
	assert.True(t, utama.NameMatches("utama"))
	assert.False(t, utama.NameMatches("Jajan"))

	lower := Wallet{ID: "2", Name: "utama"}
	assert.True(t, lower.IsProtected())

	unnamed := Wallet{ID: "3", Name: "  "}
	assert.ErrorIs(t, unnamed.Validate(), finance.ErrWalletNameRequired)
}

func TestDefaultSeeds(t *testing.T) {
	wallets := DefaultWallets()
	require.Len(t, wallets, 2)
	assert.Equal(t, ProtectedWalletName, wallets[0].Name)

	categories := DefaultCategories()
	require.Len(t, categories, 9)
	assert.Equal(t, ProtectedCategoryName, categories[len(categories)-1])
}

func TestChatMessageResolve(t *testing.T) {
	t.Run("success needs a transaction reference", func(t *testing.T) {
		message := NewUserMessage("m1", "Makan 20rb", time.Now())
		assert.Equal(t, MessageStatusPending, message.Status)

		err := message.Resolve(MessageStatusSuccess, "")
		assert.ErrorIs(t, err, assistant.ErrMissingTransactionRef)

		require.NoError(t, message.Resolve(MessageStatusSuccess, "tx1"))
		assert.Equal(t, "tx1", message.TransactionID)
	})

	t.Run("error resolution clears the reference", func(t *testing.T) {
		message := NewUserMessage("m2", "halo", time.Now())
		require.NoError(t, message.Resolve(MessageStatusError, "ignored"))
		assert.Empty(t, message.TransactionID)
	})

	t.Run("pending is not a terminal state", func(t *testing.T) {
		message := NewUserMessage("m3", "x", time.Now())
		assert.ErrorIs(t, message.Resolve(MessageStatusPending, ""), assistant.ErrInvalidMessageStatus)
	})
}

func TestBudgetValidate(t *testing.T) {
	budget := Budget{Category: "Belanja", Limit: 100000}
	assert.NoError(t, budget.Validate())

	budget.Limit = -1
	assert.ErrorIs(t, budget.Validate(), finance.ErrInvalidAmount)
}
