package state

import (
	"strings"

	"golang.org/x/net/context"

	"duitai/internal/api/settings"
)

// SetFirstDayOfMonth moves the budgeting cycle anchor. Valid days are 1-31;
// anchors past the end of a short month clamp forward via calendar overflow,
// see internal/ledger.
func (c *Controller) SetFirstDayOfMonth(ctx context.Context, day int) error {
	if day < 1 || day > 31 {
		return settings.ErrInvalidFirstDay
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.firstDayOfMonth = day
	return c.store.SaveFirstDayOfMonth(ctx, day)
}

func (c *Controller) SetAPIKey(ctx context.Context, apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return settings.ErrAPIKeyRequired
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.apiKey = apiKey
	return c.store.SaveAPIKey(ctx, apiKey)
}

func (c *Controller) ClearAPIKey(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.apiKey = ""
	return c.store.DeleteAPIKey(ctx)
}
