package state

import (
	"golang.org/x/net/context"

	"duitai/internal/api/assistant"
	"duitai/internal/entity"
)

// AppendMessage adds one turn to the chat transcript. The transcript is
// append-only.
func (c *Controller) AppendMessage(ctx context.Context, message entity.ChatMessage) error {
	if err := message.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = append(c.messages, message)
	return c.store.SaveMessages(ctx, c.messages)
}

// ResolveMessage moves a pending user message to success or error. A success
// resolution records which transaction the message produced.
func (c *Controller) ResolveMessage(ctx context.Context, id string, status entity.MessageStatus, transactionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.messages {
		if c.messages[i].ID == id {
			if err := c.messages[i].Resolve(status, transactionID); err != nil {
				return err
			}
			return c.store.SaveMessages(ctx, c.messages)
		}
	}

	return assistant.ErrMessageNotFound
}
