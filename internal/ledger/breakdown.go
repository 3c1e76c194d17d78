package ledger

import (
	"sort"

	"duitai/internal/entity"
)

// CategoryTotal is one bar of a report chart.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// CategoryBreakdown groups transactions of the given type by category, sums
// their amounts and sorts descending by total. Ties keep the insertion order
// of each category's first occurrence (the sort is stable by construction).
func CategoryBreakdown(transactions []entity.Transaction, transactionType entity.TransactionType) []CategoryTotal {
	totals := make(map[string]float64)
	order := make([]string, 0)

	for _, t := range transactions {
		if entity.TransactionType(t.Type) != transactionType {
			continue
		}

		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] += t.Amount
	}

	breakdown := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		breakdown = append(breakdown, CategoryTotal{Category: category, Total: totals[category]})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Total > breakdown[j].Total
	})

	return breakdown
}
