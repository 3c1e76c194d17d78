package ledger

import (
	"time"

	"duitai/internal/entity"
)

// CycleRange is the inclusive reporting window of one billing cycle.
type CycleRange struct {
	Start time.Time
	End   time.Time
}

// Cycle computes the billing cycle named after reference's calendar month,
// anchored to the configured first day of month (1-31). The window runs from
// day startDay 00:00:00 of that month to day startDay-1 23:59:59 of the next,
// with calendar rollover handled by time.Date normalization.
//
// When startDay exceeds the number of days in a month, the start rolls into
// the following month. That overflow is an accepted quirk of the cycle
// definition and is deliberately not corrected.
func Cycle(reference time.Time, startDay int) CycleRange {
	year, month, _ := reference.Date()
	loc := reference.Location()

	return CycleRange{
		Start: time.Date(year, month, startDay, 0, 0, 0, 0, loc),
		End:   time.Date(year, month+1, startDay-1, 23, 59, 59, 0, loc),
	}
}

// Contains reports whether t falls inside the cycle, bounds inclusive.
func (r CycleRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// TransactionsInCycle filters the transactions whose timestamp falls within
// the cycle window.
func TransactionsInCycle(transactions []entity.Transaction, cycle CycleRange) []entity.Transaction {
	result := make([]entity.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if cycle.Contains(t.Timestamp) {
			result = append(result, t)
		}
	}

	return result
}
