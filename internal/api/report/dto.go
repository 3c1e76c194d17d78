package report

type CategoryTotalResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type ReportResponse struct {
	Month            string                  `json:"month"`
	CycleStart       string                  `json:"cycle_start"`
	CycleEnd         string                  `json:"cycle_end"`
	TotalIncome      float64                 `json:"total_income"`
	TotalExpense     float64                 `json:"total_expense"`
	Net              float64                 `json:"net"`
	ExpenseBreakdown []CategoryTotalResponse `json:"expense_breakdown"`
	IncomeBreakdown  []CategoryTotalResponse `json:"income_breakdown"`
}
