package assistant

type SendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

type MessageResponse struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	Sender        string `json:"sender"`
	Timestamp     string `json:"timestamp"`
	Status        string `json:"status,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
}

type SendMessageResponse struct {
	UserMessage   MessageResponse `json:"user_message"`
	BotMessage    MessageResponse `json:"bot_message"`
	TransactionID string          `json:"transaction_id,omitempty"`
}

type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
}
