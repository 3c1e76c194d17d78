package entity

import "duitai/internal/api/finance"

// Budget is keyed by category; at most one budget exists per category.
type Budget struct {
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
}

func (b *Budget) Validate() error {
	if b.Limit < 0 {
		return finance.ErrInvalidAmount
	}

	return nil
}
