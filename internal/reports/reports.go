// Package reports computes the derived read-only views: the payable
// summary and the consolidated dashboard. It never writes.
package reports

import "context"

// Summary is the payables roll-up for one user.
type Summary struct {
	Total   float64 `json:"total"`
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
	Overdue float64 `json:"overdue"`
}

// CashFlowEntry is one calendar month of realized income and expense.
type CashFlowEntry struct {
	Month   string  `json:"month"` // Jan/2006
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// Dashboard is the consolidated snapshot for one user.
type Dashboard struct {
	TotalBalance       float64            `json:"totalBalance"`
	PendingPayables    float64            `json:"pendingPayables"`
	PendingReceivables float64            `json:"pendingReceivables"`
	CardBalance        float64            `json:"cardBalance"`
	InvestmentsTotal   float64            `json:"investmentsTotal"`
	CashFlow           []CashFlowEntry    `json:"cashFlow"`
	ExpenseByCategory  map[string]float64 `json:"expenseByCategory"`
}

// PayableFilter narrows a payable sum. Empty fields are ignored. Date
// bounds are YYYY-MM-DD strings; From/To are inclusive, DueBefore is
// exclusive.
type PayableFilter struct {
	Status    string
	DueFrom   string
	DueTo     string
	DueBefore string
	PaidFrom  string
	PaidTo    string
}

// ReceivableFilter narrows a receivable sum. Same conventions as
// PayableFilter.
type ReceivableFilter struct {
	Status       string
	ReceivedFrom string
	ReceivedTo   string
}

// Ledger is the read side of the store the engine aggregates over. All
// sums are ownership-scoped and return 0 when no rows match.
type Ledger interface {
	SumPayables(ctx context.Context, userID uint, f PayableFilter) (float64, error)
	SumReceivables(ctx context.Context, userID uint, f ReceivableFilter) (float64, error)
	SumBankBalances(ctx context.Context, userID uint) (float64, error)
	SumCardStatements(ctx context.Context, userID uint) (float64, error)
	SumInvestments(ctx context.Context, userID uint) (float64, error)
	SumPaidByCategory(ctx context.Context, userID uint, from, to string) (map[string]float64, error)
}
