package reports

import (
	"context"

	"gorm.io/gorm"

	"finance-control-go/internal/models"
)

// GormLedger implements Ledger on the relational store. Every sum is
// pushed to the database; COALESCE keeps the zero-for-no-rows rule
// there too.
type GormLedger struct {
	db *gorm.DB
}

func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{db: db}
}

func (l *GormLedger) SumPayables(ctx context.Context, userID uint, f PayableFilter) (float64, error) {
	q := l.db.WithContext(ctx).Model(&models.Payable{}).Where("user_id = ?", userID)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.DueFrom != "" {
		q = q.Where("due_date >= ?", f.DueFrom)
	}
	if f.DueTo != "" {
		q = q.Where("due_date <= ?", f.DueTo)
	}
	if f.DueBefore != "" {
		q = q.Where("due_date < ?", f.DueBefore)
	}
	if f.PaidFrom != "" {
		q = q.Where("paid_date >= ?", f.PaidFrom)
	}
	if f.PaidTo != "" {
		q = q.Where("paid_date <= ?", f.PaidTo)
	}
	var total float64
	err := q.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

func (l *GormLedger) SumReceivables(ctx context.Context, userID uint, f ReceivableFilter) (float64, error) {
	q := l.db.WithContext(ctx).Model(&models.Receivable{}).Where("user_id = ?", userID)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ReceivedFrom != "" {
		q = q.Where("received_date >= ?", f.ReceivedFrom)
	}
	if f.ReceivedTo != "" {
		q = q.Where("received_date <= ?", f.ReceivedTo)
	}
	var total float64
	err := q.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

func (l *GormLedger) SumBankBalances(ctx context.Context, userID uint) (float64, error) {
	var total float64
	err := l.db.WithContext(ctx).Model(&models.BankAccount{}).
		Where("user_id = ? AND active = ?", userID, true).
		Select("COALESCE(SUM(balance), 0)").Scan(&total).Error
	return total, err
}

func (l *GormLedger) SumCardStatements(ctx context.Context, userID uint) (float64, error) {
	var total float64
	err := l.db.WithContext(ctx).Model(&models.CreditCard{}).
		Where("user_id = ? AND active = ?", userID, true).
		Select("COALESCE(SUM(current_statement), 0)").Scan(&total).Error
	return total, err
}

func (l *GormLedger) SumInvestments(ctx context.Context, userID uint) (float64, error) {
	var total float64
	err := l.db.WithContext(ctx).Model(&models.Investment{}).
		Where("user_id = ? AND active = ?", userID, true).
		Select("COALESCE(SUM(current_value), 0)").Scan(&total).Error
	return total, err
}

func (l *GormLedger) SumPaidByCategory(ctx context.Context, userID uint, from, to string) (map[string]float64, error) {
	var rows []struct {
		Category string
		Total    float64
	}
	err := l.db.WithContext(ctx).Model(&models.Payable{}).
		Where("user_id = ? AND status = ? AND paid_date >= ? AND paid_date <= ?",
			userID, models.PayableStatusPaid, from, to).
		Select("category, SUM(amount) AS total").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]float64, len(rows))
	for _, r := range rows {
		byCategory[r.Category] = r.Total
	}
	return byCategory, nil
}
