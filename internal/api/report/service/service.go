package reportService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"duitai/internal/api/report"
	"duitai/internal/ledger"
	"duitai/internal/state"
)

type IReportService interface {
	MonthlyReport(ctx context.Context, month string) (report.ReportResponse, error)
}

type reportService struct {
	log   *logrus.Logger
	state *state.Controller
}

func New(log *logrus.Logger, stateController *state.Controller) IReportService {
	return &reportService{
		log:   log,
		state: stateController,
	}
}

// MonthlyReport aggregates the budgeting cycle anchored in the given month
// ("YYYY-MM", empty means the current month). The cycle runs from the
// configured first day of that month to the day before it in the next one.
func (s *reportService) MonthlyReport(ctx context.Context, month string) (report.ReportResponse, error) {
	reference := time.Now()
	if month != "" {
		parsed, err := time.ParseInLocation("2006-01", month, time.Local)
		if err != nil {
			return report.ReportResponse{}, report.ErrInvalidMonth
		}
		reference = parsed
	}

	cycle := ledger.Cycle(reference, s.state.FirstDayOfMonth())
	transactions := ledger.TransactionsInCycle(s.state.Transactions(), cycle)
	totalIncome, totalExpense := ledger.Totals(transactions)

	return report.ReportResponse{
		Month:            cycle.Start.Format("2006-01"),
		CycleStart:       cycle.Start.Format(time.RFC3339),
		CycleEnd:         cycle.End.Format(time.RFC3339),
		TotalIncome:      totalIncome,
		TotalExpense:     totalExpense,
		Net:              totalIncome - totalExpense,
		ExpenseBreakdown: breakdownResponse(ledger.CategoryBreakdown(transactions, "expense")),
		IncomeBreakdown:  breakdownResponse(ledger.CategoryBreakdown(transactions, "income")),
	}, nil
}

func breakdownResponse(totals []ledger.CategoryTotal) []report.CategoryTotalResponse {
	responses := make([]report.CategoryTotalResponse, 0, len(totals))
	for _, total := range totals {
		responses = append(responses, report.CategoryTotalResponse{
			Category: total.Category,
			Total:    total.Total,
		})
	}
	return responses
}
