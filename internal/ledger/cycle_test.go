package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"duitai/internal/entity"
)

func TestCycle(t *testing.T) {
	tests := []struct {
		name      string
		reference time.Time
		startDay  int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "calendar month when start day is 1",
			reference: time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC),
			startDay:  1,
			wantStart: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "mid-month anchor spans into the next month",
			reference: time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC),
			startDay:  25,
			wantStart: time.Date(2025, time.March, 25, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.April, 24, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "december cycle rolls over the year",
			reference: time.Date(2025, time.December, 5, 0, 0, 0, 0, time.UTC),
			startDay:  10,
			wantStart: time.Date(2025, time.December, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.January, 9, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "start day beyond month length overflows into next month",
			reference: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
			startDay:  31,
			wantStart: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.May, 30, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cycle := Cycle(tt.reference, tt.startDay)
			assert.Equal(t, tt.wantStart, cycle.Start)
			assert.Equal(t, tt.wantEnd, cycle.End)
		})
	}
}

func TestCycleRangeContainsIsInclusive(t *testing.T) {
	cycle := Cycle(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), 1)

	assert.True(t, cycle.Contains(cycle.Start))
	assert.True(t, cycle.Contains(cycle.End))
	assert.False(t, cycle.Contains(cycle.Start.Add(-time.Second)))
	assert.False(t, cycle.Contains(cycle.End.Add(time.Second)))
}

func TestTransactionsInCycle(t *testing.T) {
	cycle := Cycle(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), 25)

	inside := entity.Transaction{ID: "in", Timestamp: time.Date(2025, time.April, 10, 8, 0, 0, 0, time.UTC)}
	onStart := entity.Transaction{ID: "start", Timestamp: cycle.Start}
	onEnd := entity.Transaction{ID: "end", Timestamp: cycle.End}
	before := entity.Transaction{ID: "before", Timestamp: time.Date(2025, time.March, 24, 23, 59, 59, 0, time.UTC)}
	after := entity.Transaction{ID: "after", Timestamp: time.Date(2025, time.April, 25, 0, 0, 0, 0, time.UTC)}

	got := TransactionsInCycle([]entity.Transaction{inside, onStart, onEnd, before, after}, cycle)

	ids := make([]string, 0, len(got))
	for _, trx := range got {
		ids = append(ids, trx.ID)
	}
	assert.Equal(t, []string{"in", "start", "end"}, ids)
}
