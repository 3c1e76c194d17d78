package assistant

import "duitai/pkg/response"

var (
	ErrMessageNotFound       = response.NewError(404, "chat message not found")
	ErrAssistantBusy         = response.NewError(429, "another message is still being processed")
	ErrEmptyMessage          = response.NewError(400, "message text is required")
	ErrInvalidSender         = response.NewError(400, "invalid message sender")
	ErrInvalidMessageStatus  = response.NewError(400, "invalid message status")
	ErrMissingTransactionRef = response.NewError(400, "successful message must reference a transaction")
)
