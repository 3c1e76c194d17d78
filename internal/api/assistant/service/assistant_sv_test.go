package assistantService

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duitai/internal/api/assistant"
	"duitai/internal/entity"
	"duitai/internal/state"
	"duitai/internal/storage"
	"duitai/pkg/gemini"
	"duitai/pkg/nlp"
	"duitai/pkg/utils"
)

type stubGemini struct {
	draft nlp.Draft
	err   error
	calls int
}

func (s *stubGemini) ParseFinancialInput(_ context.Context, _, _ string, _ []string) (nlp.Draft, error) {
	s.calls++
	return s.draft, s.err
}

func newTestService(t *testing.T, remote gemini.IGemini) (IAssistantService, *state.Controller) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "")

	log := logrus.New()
	log.SetOutput(io.Discard)

	controller := state.New(log, storage.NewMemoryStore(), utils.New())
	require.NoError(t, controller.Load(context.Background()))

	return New(log, controller, remote, nlp.NewLocalParser(), utils.New()), controller
}

func TestSendMessageLocalParser(t *testing.T) {
	remote := &stubGemini{}
	service, controller := newTestService(t, remote)

	res, err := service.SendMessage(context.Background(), assistant.SendMessageRequest{
		Text: "Makan siang 30rb dompet jajan",
	})

	require.NoError(t, err)
	assert.Zero(t, remote.calls, "no credential configured, remote parser must not be called")

	assert.Equal(t, "success", res.UserMessage.Status)
	assert.NotEmpty(t, res.TransactionID)
	assert.Contains(t, res.BotMessage.Text, "✅ Berhasil!")
	assert.Contains(t, res.BotMessage.Text, "Dompet: Jajan")

	transactions := controller.Transactions()
	require.Len(t, transactions, 1)
	assert.Equal(t, float64(30000), transactions[0].Amount)

	// welcome + user + bot
	assert.Len(t, controller.Messages(), 3)
}

func TestSendMessageWalletFallbackWarning(t *testing.T) {
	service, _ := newTestService(t, &stubGemini{})

	res, err := service.SendMessage(context.Background(), assistant.SendMessageRequest{
		Text: "Bayar parkir 5rb dompet dana",
	})

	require.NoError(t, err)
	assert.Contains(t, res.BotMessage.Text, "tidak ditemukan")
	assert.Contains(t, res.BotMessage.Text, `"Utama"`)
}

func TestSendMessageParseFailure(t *testing.T) {
	service, controller := newTestService(t, &stubGemini{})

	res, err := service.SendMessage(context.Background(), assistant.SendMessageRequest{
		Text: "halo apa kabar",
	})

	require.NoError(t, err)
	assert.Equal(t, "error", res.UserMessage.Status)
	assert.Empty(t, res.TransactionID)
	assert.True(t, strings.HasPrefix(res.BotMessage.Text, "Maaf"))
	assert.Empty(t, controller.Transactions())
}

func TestSendMessageUsesRemoteParserWhenKeyConfigured(t *testing.T) {
	remote := &stubGemini{
		draft: nlp.Draft{
			Amount:      2000000,
			Type:        "income",
			Category:    "Gaji & Bonus",
			Wallet:      "Utama",
			Description: "gajian",
			Success:     true,
		},
	}
	service, controller := newTestService(t, remote)
	require.NoError(t, controller.SetAPIKey(context.Background(), "configured-key"))

	res, err := service.SendMessage(context.Background(), assistant.SendMessageRequest{
		Text: "Gajian masuk 2jt Utama",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, remote.calls)
	assert.Equal(t, "success", res.UserMessage.Status)

	transactions := controller.Transactions()
	require.Len(t, transactions, 1)
	assert.Equal(t, "income", transactions[0].Type)
}

func TestSendMessageCredentialError(t *testing.T) {
	remote := &stubGemini{err: gemini.ErrInvalidAPIKey}
	service, controller := newTestService(t, remote)
	require.NoError(t, controller.SetAPIKey(context.Background(), "bad-key"))

	_, err := service.SendMessage(context.Background(), assistant.SendMessageRequest{
		Text: "Makan 20rb",
	})

	require.ErrorIs(t, err, gemini.ErrInvalidAPIKey)
	assert.Empty(t, controller.Transactions())

	messages := controller.Messages()
	last := messages[len(messages)-1]
	assert.Equal(t, entity.MessageStatusError, last.Status)
}

func TestGetMessages(t *testing.T) {
	service, _ := newTestService(t, &stubGemini{})

	res, err := service.GetMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, "bot", res.Messages[0].Sender)
}
