// Package jobs holds the scheduled maintenance tasks.
package jobs

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"finance-control-go/internal/models"
)

const dateLayout = "2006-01-02"

// OverdueMarker flips pending receivables whose due date has passed to
// OVERDUE. Pending payables keep their status: the summary computes
// overdue on the fly.
type OverdueMarker struct {
	db  *gorm.DB
	log *logrus.Logger
	now func() time.Time
}

func NewOverdueMarker(db *gorm.DB, log *logrus.Logger, now func() time.Time) *OverdueMarker {
	if now == nil {
		now = time.Now
	}
	return &OverdueMarker{db: db, log: log, now: now}
}

// Run performs one marking pass.
func (m *OverdueMarker) Run() {
	today := m.now().Format(dateLayout)

	res := m.db.Model(&models.Receivable{}).
		Where("status = ? AND due_date < ?", models.ReceivableStatusPending, today).
		Update("status", models.ReceivableStatusOverdue)
	if res.Error != nil {
		m.log.WithError(res.Error).Error("overdue marking failed")
		return
	}
	if res.RowsAffected > 0 {
		m.log.WithFields(logrus.Fields{"marked": res.RowsAffected}).Info("receivables marked overdue")
	}
}

// Schedule registers the marker on the cron according to spec and runs
// one pass immediately so a restarted service catches up.
func (m *OverdueMarker) Schedule(c *cron.Cron, spec string) error {
	if _, err := c.AddFunc(spec, m.Run); err != nil {
		return err
	}
	m.Run()
	return nil
}
