package reports

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"finance-control-go/internal/models"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "Jan/2006"
	flowMonths  = 6
)

// Engine assembles summaries and dashboard snapshots from a Ledger.
// The clock is injected so overdue and window calculations are
// deterministic under test.
type Engine struct {
	ledger Ledger
	now    func() time.Time
}

// NewEngine builds an engine over the given ledger. A nil clock means
// time.Now.
func NewEngine(ledger Ledger, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{ledger: ledger, now: now}
}

// Summary computes the payable roll-up, optionally restricted to an
// inclusive due-date range. Both bounds are YYYY-MM-DD or empty.
// CANCELED payables count toward Total but not Paid/Pending/Overdue.
func (e *Engine) Summary(ctx context.Context, userID uint, from, to string) (*Summary, error) {
	base := PayableFilter{DueFrom: from, DueTo: to}

	total, err := e.ledger.SumPayables(ctx, userID, base)
	if err != nil {
		return nil, fmt.Errorf("sum total: %w", err)
	}

	paidFilter := base
	paidFilter.Status = models.PayableStatusPaid
	paid, err := e.ledger.SumPayables(ctx, userID, paidFilter)
	if err != nil {
		return nil, fmt.Errorf("sum paid: %w", err)
	}

	pendingFilter := base
	pendingFilter.Status = models.PayableStatusPending
	pending, err := e.ledger.SumPayables(ctx, userID, pendingFilter)
	if err != nil {
		return nil, fmt.Errorf("sum pending: %w", err)
	}

	overdueFilter := pendingFilter
	overdueFilter.DueBefore = e.now().Format(dateLayout)
	overdue, err := e.ledger.SumPayables(ctx, userID, overdueFilter)
	if err != nil {
		return nil, fmt.Errorf("sum overdue: %w", err)
	}

	return &Summary{Total: total, Paid: paid, Pending: pending, Overdue: overdue}, nil
}

// Dashboard composes the consolidated snapshot. The aggregate reads are
// independent, so they fan out concurrently; the first failure cancels
// the rest and no partial snapshot is returned.
func (e *Engine) Dashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	now := e.now()
	d := &Dashboard{}
	flow := make([]CashFlowEntry, flowMonths) // most recent first

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		v, err := e.ledger.SumBankBalances(gctx, userID)
		if err != nil {
			return fmt.Errorf("sum bank balances: %w", err)
		}
		d.TotalBalance = v
		return nil
	})

	g.Go(func() error {
		v, err := e.ledger.SumPayables(gctx, userID, PayableFilter{Status: models.PayableStatusPending})
		if err != nil {
			return fmt.Errorf("sum pending payables: %w", err)
		}
		d.PendingPayables = v
		return nil
	})

	g.Go(func() error {
		v, err := e.ledger.SumReceivables(gctx, userID, ReceivableFilter{Status: models.ReceivableStatusPending})
		if err != nil {
			return fmt.Errorf("sum pending receivables: %w", err)
		}
		d.PendingReceivables = v
		return nil
	})

	g.Go(func() error {
		v, err := e.ledger.SumCardStatements(gctx, userID)
		if err != nil {
			return fmt.Errorf("sum card statements: %w", err)
		}
		d.CardBalance = v
		return nil
	})

	g.Go(func() error {
		v, err := e.ledger.SumInvestments(gctx, userID)
		if err != nil {
			return fmt.Errorf("sum investments: %w", err)
		}
		d.InvestmentsTotal = v
		return nil
	})

	for i := 0; i < flowMonths; i++ {
		i := i
		anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		g.Go(func() error {
			first := anchor.Format(dateLayout)
			last := anchor.AddDate(0, 1, -1).Format(dateLayout)

			income, err := e.ledger.SumReceivables(gctx, userID, ReceivableFilter{
				Status:       models.ReceivableStatusReceived,
				ReceivedFrom: first,
				ReceivedTo:   last,
			})
			if err != nil {
				return fmt.Errorf("cash flow income %s: %w", first, err)
			}

			expense, err := e.ledger.SumPayables(gctx, userID, PayableFilter{
				Status:   models.PayableStatusPaid,
				PaidFrom: first,
				PaidTo:   last,
			})
			if err != nil {
				return fmt.Errorf("cash flow expense %s: %w", first, err)
			}

			flow[i] = CashFlowEntry{
				Month:   anchor.Format(monthLayout),
				Income:  income,
				Expense: expense,
			}
			return nil
		})
	}

	g.Go(func() error {
		from := now.AddDate(0, -flowMonths, 0).Format(dateLayout)
		to := now.Format(dateLayout)
		byCategory, err := e.ledger.SumPaidByCategory(gctx, userID, from, to)
		if err != nil {
			return fmt.Errorf("expenses by category: %w", err)
		}
		d.ExpenseByCategory = byCategory
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Reverse into chronological order, oldest month first.
	for l, r := 0, len(flow)-1; l < r; l, r = l+1, r-1 {
		flow[l], flow[r] = flow[r], flow[l]
	}
	d.CashFlow = flow

	return d, nil
}
