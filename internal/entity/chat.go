package entity

import (
	"duitai/internal/api/assistant"
	"time"
)

type MessageSender string

const (
	MessageSenderUser MessageSender = "user"
	MessageSenderBot  MessageSender = "bot"
)

type MessageStatus string

const (
	MessageStatusPending MessageStatus = "pending"
	MessageStatusSuccess MessageStatus = "success"
	MessageStatusError   MessageStatus = "error"
)

// ChatMessage is one turn of the conversation transcript. Messages are
// appended and resolved, never deleted. Status and TransactionID are only set
// on user messages: a pending message resolves to success (carrying the id of
// the transaction it produced) or to error.
type ChatMessage struct {
	ID            string        `json:"id"`
	Text          string        `json:"text"`
	Sender        MessageSender `json:"sender"`
	Timestamp     time.Time     `json:"timestamp"`
	Status        MessageStatus `json:"status,omitempty"`
	TransactionID string        `json:"transactionId,omitempty"`
}

// NewUserMessage starts a chat turn in the pending state.
func NewUserMessage(id, text string, at time.Time) ChatMessage {
	return ChatMessage{
		ID:        id,
		Text:      text,
		Sender:    MessageSenderUser,
		Timestamp: at,
		Status:    MessageStatusPending,
	}
}

func NewBotMessage(id, text string, at time.Time) ChatMessage {
	return ChatMessage{
		ID:        id,
		Text:      text,
		Sender:    MessageSenderBot,
		Timestamp: at,
	}
}

// Resolve moves a pending message to its terminal state. A success resolution
// must carry the transaction it recorded.
func (m *ChatMessage) Resolve(status MessageStatus, transactionID string) error {
	switch status {
	case MessageStatusSuccess:
		if transactionID == "" {
			return assistant.ErrMissingTransactionRef
		}
		m.Status = MessageStatusSuccess
		m.TransactionID = transactionID
	case MessageStatusError:
		m.Status = MessageStatusError
		m.TransactionID = ""
	default:
		return assistant.ErrInvalidMessageStatus
	}

	return nil
}

func (m *ChatMessage) Validate() error {
	if m.Text == "" {
		return assistant.ErrEmptyMessage
	}

	if m.Sender != MessageSenderUser && m.Sender != MessageSenderBot {
		return assistant.ErrInvalidSender
	}

	if m.Status == MessageStatusSuccess && m.TransactionID == "" {
		return assistant.ErrMissingTransactionRef
	}

	return nil
}
