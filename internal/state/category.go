package state

import (
	"strings"

	"golang.org/x/net/context"

	"duitai/internal/api/finance"
	"duitai/internal/entity"
)

func (c *Controller) AddCategory(ctx context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return finance.ErrCategoryNotFound
	}

	for _, existing := range c.categories {
		if strings.EqualFold(existing, name) {
			return finance.ErrCategoryAlreadyExists
		}
	}

	c.categories = append(c.categories, name)
	return c.store.SaveCategories(ctx, c.categories)
}

// DeleteCategory removes a category and its budget. The catch-all category is
// refused; transactions keep their category string untouched.
func (c *Controller) DeleteCategory(ctx context.Context, name string, confirmed bool) error {
	if !confirmed {
		return finance.ErrConfirmationRequired
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if strings.EqualFold(name, entity.ProtectedCategoryName) {
		return finance.ErrProtectedCategory
	}

	idx := -1
	for i, existing := range c.categories {
		if strings.EqualFold(existing, name) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return finance.ErrCategoryNotFound
	}

	removed := c.categories[idx]
	c.categories = append(c.categories[:idx], c.categories[idx+1:]...)
	if err := c.store.SaveCategories(ctx, c.categories); err != nil {
		return err
	}

	kept := c.budgets[:0]
	for _, budget := range c.budgets {
		if budget.Category != removed {
			kept = append(kept, budget)
		}
	}
	if len(kept) != len(c.budgets) {
		c.budgets = kept
		return c.store.SaveBudgets(ctx, c.budgets)
	}
	c.budgets = kept

	return nil
}

// UpsertBudget sets the spending limit for a category, creating the budget on
// first use.
func (c *Controller) UpsertBudget(ctx context.Context, category string, limit float64) (entity.Budget, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	matched := ""
	for _, existing := range c.categories {
		if strings.EqualFold(existing, category) {
			matched = existing
			break
		}
	}
	if matched == "" {
		return entity.Budget{}, finance.ErrCategoryNotFound
	}

	budget := entity.Budget{Category: matched, Limit: limit}
	if err := budget.Validate(); err != nil {
		return entity.Budget{}, err
	}

	for i := range c.budgets {
		if c.budgets[i].Category == matched {
			c.budgets[i].Limit = limit
			if err := c.store.SaveBudgets(ctx, c.budgets); err != nil {
				return entity.Budget{}, err
			}
			return c.budgets[i], nil
		}
	}

	c.budgets = append(c.budgets, budget)
	if err := c.store.SaveBudgets(ctx, c.budgets); err != nil {
		return entity.Budget{}, err
	}

	return budget, nil
}
