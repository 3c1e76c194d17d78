package reportService

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duitai/internal/api/report"
	"duitai/internal/state"
	"duitai/internal/storage"
	"duitai/pkg/utils"
)

func newTestService(t *testing.T) (IReportService, *state.Controller) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	controller := state.New(log, storage.NewMemoryStore(), utils.New())
	require.NoError(t, controller.Load(context.Background()))

	return New(log, controller), controller
}

func TestMonthlyReportInvalidMonth(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.MonthlyReport(context.Background(), "05-2026")
	assert.ErrorIs(t, err, report.ErrInvalidMonth)

	_, err = service.MonthlyReport(context.Background(), "2026-13")
	assert.ErrorIs(t, err, report.ErrInvalidMonth)
}

func TestMonthlyReportAggregates(t *testing.T) {
	service, controller := newTestService(t)
	ctx := context.Background()

	_, err := controller.AddTransaction(ctx, 5000000, "income", "Gaji & Bonus", "gajian", "Utama")
	require.NoError(t, err)
	_, err = controller.AddTransaction(ctx, 30000, "expense", "Makanan & Minuman", "makan", "Jajan")
	require.NoError(t, err)
	_, err = controller.AddTransaction(ctx, 20000, "expense", "Transportasi", "ojek", "Utama")
	require.NoError(t, err)

	res, err := service.MonthlyReport(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, float64(5000000), res.TotalIncome)
	assert.Equal(t, float64(50000), res.TotalExpense)
	assert.Equal(t, float64(4950000), res.Net)

	require.Len(t, res.ExpenseBreakdown, 2)
	assert.Equal(t, "Makanan & Minuman", res.ExpenseBreakdown[0].Category)
	require.Len(t, res.IncomeBreakdown, 1)
}

func TestMonthlyReportCycleAnchoredOnFirstDay(t *testing.T) {
	service, controller := newTestService(t)
	ctx := context.Background()

	require.NoError(t, controller.SetFirstDayOfMonth(ctx, 25))

	res, err := service.MonthlyReport(ctx, "2026-03")
	require.NoError(t, err)

	assert.Equal(t, "2026-03", res.Month)
	assert.Contains(t, res.CycleStart, "2026-03-25T00:00:00")
	assert.Contains(t, res.CycleEnd, "2026-04-24T23:59:59")
}
