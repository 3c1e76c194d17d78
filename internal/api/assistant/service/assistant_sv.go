package assistantService

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"duitai/internal/api/assistant"
	"duitai/internal/entity"
	contextPkg "duitai/pkg/context"
	"duitai/pkg/nlp"
)

const parseFailureText = "Maaf, tuliskan seperti: 'Makan 20rb dompet jajan'."

// SendMessage runs one chat turn: append the pending user message, parse it,
// record the transaction and reply. Only one turn may be parsing at a time.
func (s *assistantService) SendMessage(ctx context.Context, req assistant.SendMessageRequest) (assistant.SendMessageResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !s.processing.CompareAndSwap(false, true) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Rejected chat turn while another is being parsed")
		return assistant.SendMessageResponse{}, assistant.ErrAssistantBusy
	}
	defer s.processing.Store(false)

	userMessageID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return assistant.SendMessageResponse{}, err
	}

	userMessage := entity.NewUserMessage(userMessageID, req.Text, time.Now())
	if err := s.state.AppendMessage(ctx, userMessage); err != nil {
		return assistant.SendMessageResponse{}, err
	}

	categories := s.state.Categories()

	draft, err := s.parse(ctx, req.Text, categories)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Parser failed")
		if resolveErr := s.state.ResolveMessage(ctx, userMessageID, entity.MessageStatusError, ""); resolveErr != nil {
			return assistant.SendMessageResponse{}, resolveErr
		}
		return assistant.SendMessageResponse{}, err
	}

	if !draft.Success {
		return s.replyParseFailure(ctx, userMessage)
	}

	transaction, walletFellBack, err := s.state.RecordParsedTransaction(ctx, draft)
	if err != nil {
		if resolveErr := s.state.ResolveMessage(ctx, userMessageID, entity.MessageStatusError, ""); resolveErr != nil {
			return assistant.SendMessageResponse{}, resolveErr
		}
		return assistant.SendMessageResponse{}, err
	}

	if err := s.state.ResolveMessage(ctx, userMessageID, entity.MessageStatusSuccess, transaction.ID); err != nil {
		return assistant.SendMessageResponse{}, err
	}
	userMessage.Status = entity.MessageStatusSuccess
	userMessage.TransactionID = transaction.ID

	botMessage, err := s.appendBotMessage(ctx, s.successText(transaction, draft.Wallet, walletFellBack))
	if err != nil {
		return assistant.SendMessageResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"transaction_id": transaction.ID,
	}).Info("Chat turn recorded a transaction")

	return assistant.SendMessageResponse{
		UserMessage:   messageResponse(userMessage),
		BotMessage:    messageResponse(botMessage),
		TransactionID: transaction.ID,
	}, nil
}

func (s *assistantService) GetMessages(ctx context.Context) (assistant.MessageListResponse, error) {
	messages := s.state.Messages()

	responses := make([]assistant.MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, messageResponse(message))
	}

	return assistant.MessageListResponse{Messages: responses}, nil
}

// parse picks the remote parser when a credential is configured (user-set key
// first, then the environment) and the local extractor otherwise.
func (s *assistantService) parse(ctx context.Context, text string, categories []string) (nlp.Draft, error) {
	apiKey := s.state.APIKey()
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	if apiKey == "" {
		return s.localParser.Parse(text, categories), nil
	}

	return s.gemini.ParseFinancialInput(ctx, apiKey, text, categories)
}

func (s *assistantService) replyParseFailure(ctx context.Context, userMessage entity.ChatMessage) (assistant.SendMessageResponse, error) {
	if err := s.state.ResolveMessage(ctx, userMessage.ID, entity.MessageStatusError, ""); err != nil {
		return assistant.SendMessageResponse{}, err
	}
	userMessage.Status = entity.MessageStatusError

	botMessage, err := s.appendBotMessage(ctx, parseFailureText)
	if err != nil {
		return assistant.SendMessageResponse{}, err
	}

	return assistant.SendMessageResponse{
		UserMessage: messageResponse(userMessage),
		BotMessage:  messageResponse(botMessage),
	}, nil
}

func (s *assistantService) appendBotMessage(ctx context.Context, text string) (entity.ChatMessage, error) {
	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.ChatMessage{}, err
	}

	botMessage := entity.NewBotMessage(id, text, time.Now())
	if err := s.state.AppendMessage(ctx, botMessage); err != nil {
		return entity.ChatMessage{}, err
	}

	return botMessage, nil
}

func (s *assistantService) successText(transaction entity.Transaction, requestedWallet string, walletFellBack bool) string {
	walletFeedback := ""
	if walletFellBack {
		walletFeedback = fmt.Sprintf("\n(⚠️ Dompet %q tidak ditemukan, masuk ke %q)", requestedWallet, entity.ProtectedWalletName)
	}

	return fmt.Sprintf("✅ Berhasil!\n\n💰 %s\n🏷️ %s\n💳 Dompet: %s%s",
		s.utils.FormatIDR(transaction.Amount), transaction.Category, transaction.Wallet, walletFeedback)
}

func messageResponse(message entity.ChatMessage) assistant.MessageResponse {
	return assistant.MessageResponse{
		ID:            message.ID,
		Text:          message.Text,
		Sender:        string(message.Sender),
		Timestamp:     message.Timestamp.Format(time.RFC3339),
		Status:        string(message.Status),
		TransactionID: message.TransactionID,
	}
}
