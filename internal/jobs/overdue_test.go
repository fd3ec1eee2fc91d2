package jobs

import (
	"io"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"finance-control-go/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Receivable{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestOverdueMarker(t *testing.T) {
	db := openTestDB(t)
	rows := []models.Receivable{
		{UserID: 1, Amount: 100, Status: models.ReceivableStatusPending, DueDate: "2025-06-10"},
		{UserID: 1, Amount: 50, Status: models.ReceivableStatusPending, DueDate: "2025-06-15"},
		{UserID: 1, Amount: 75, Status: models.ReceivableStatusPending, DueDate: "2025-06-20"},
		{UserID: 1, Amount: 30, Status: models.ReceivableStatusReceived, DueDate: "2025-06-01"},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	now := func() time.Time { return time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC) }
	NewOverdueMarker(db, quietLogger(), now).Run()

	var statuses []string
	if err := db.Model(&models.Receivable{}).Order("id asc").Pluck("status", &statuses).Error; err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := []string{
		models.ReceivableStatusOverdue,  // due before today
		models.ReceivableStatusPending,  // due today, not overdue yet
		models.ReceivableStatusPending,  // due later
		models.ReceivableStatusReceived, // already settled, untouched
	}
	for i, w := range want {
		if statuses[i] != w {
			t.Errorf("row %d: expected %s, got %s", i, w, statuses[i])
		}
	}
}

func TestOverdueMarkerIdempotent(t *testing.T) {
	db := openTestDB(t)
	row := models.Receivable{UserID: 1, Amount: 100, Status: models.ReceivableStatusPending, DueDate: "2025-01-01"}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	m := NewOverdueMarker(db, quietLogger(), nil)
	m.Run()
	m.Run()

	var got models.Receivable
	if err := db.First(&got, row.ID).Error; err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got.Status != models.ReceivableStatusOverdue {
		t.Errorf("expected OVERDUE, got %s", got.Status)
	}
}
