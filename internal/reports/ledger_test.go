package reports

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
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
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{}, &models.Supplier{}, &models.Client{},
		&models.Payable{}, &models.Receivable{},
		&models.BankAccount{}, &models.CreditCard{}, &models.Investment{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

func seedPayables(t *testing.T, db *gorm.DB) {
	t.Helper()
	rows := []models.Payable{
		{UserID: 1, Amount: 100, Status: models.PayableStatusPending, DueDate: "2025-06-10", Category: "rent"},
		{UserID: 1, Amount: 50, Status: models.PayableStatusPaid, DueDate: "2025-06-01", PaidDate: strPtr("2025-06-02"), Category: "food"},
		{UserID: 1, Amount: 25, Status: models.PayableStatusCanceled, DueDate: "2025-06-20", Category: "food"},
		{UserID: 2, Amount: 999, Status: models.PayableStatusPending, DueDate: "2025-06-10", Category: "rent"},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed payables: %v", err)
	}
}

func TestSumPayablesScoping(t *testing.T) {
	db := openTestDB(t)
	seedPayables(t, db)
	ledger := NewGormLedger(db)
	ctx := context.Background()

	total, err := ledger.SumPayables(ctx, 1, PayableFilter{})
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if total != 175 {
		t.Errorf("expected 175 for user 1, got %v", total)
	}

	pending, err := ledger.SumPayables(ctx, 1, PayableFilter{Status: models.PayableStatusPending})
	if err != nil {
		t.Fatalf("sum pending: %v", err)
	}
	if pending != 100 {
		t.Errorf("expected 100 pending, got %v", pending)
	}
}

func TestSumPayablesZeroForNoRows(t *testing.T) {
	db := openTestDB(t)
	ledger := NewGormLedger(db)

	total, err := ledger.SumPayables(context.Background(), 7, PayableFilter{})
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if total != 0 {
		t.Errorf("expected 0, got %v", total)
	}
}

func TestSumPayablesDateBounds(t *testing.T) {
	db := openTestDB(t)
	seedPayables(t, db)
	ledger := NewGormLedger(db)
	ctx := context.Background()

	// Inclusive range picks up the boundary rows.
	total, err := ledger.SumPayables(ctx, 1, PayableFilter{DueFrom: "2025-06-01", DueTo: "2025-06-10"})
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if total != 150 {
		t.Errorf("expected 150 in range, got %v", total)
	}

	// DueBefore is exclusive.
	overdue, err := ledger.SumPayables(ctx, 1, PayableFilter{
		Status:    models.PayableStatusPending,
		DueBefore: "2025-06-10",
	})
	if err != nil {
		t.Fatalf("sum overdue: %v", err)
	}
	if overdue != 0 {
		t.Errorf("expected 0 due strictly before 2025-06-10, got %v", overdue)
	}

	overdue, err = ledger.SumPayables(ctx, 1, PayableFilter{
		Status:    models.PayableStatusPending,
		DueBefore: "2025-06-11",
	})
	if err != nil {
		t.Fatalf("sum overdue: %v", err)
	}
	if overdue != 100 {
		t.Errorf("expected 100 due before 2025-06-11, got %v", overdue)
	}
}

func TestSumReceivables(t *testing.T) {
	db := openTestDB(t)
	rows := []models.Receivable{
		{UserID: 1, Amount: 200, Status: models.ReceivableStatusReceived, DueDate: "2025-05-05", ReceivedDate: strPtr("2025-05-10")},
		{UserID: 1, Amount: 75, Status: models.ReceivableStatusPending, DueDate: "2025-06-20"},
		{UserID: 1, Amount: 40, Status: models.ReceivableStatusReceived, DueDate: "2025-04-01", ReceivedDate: strPtr("2025-04-02")},
		{UserID: 2, Amount: 999, Status: models.ReceivableStatusReceived, DueDate: "2025-05-05", ReceivedDate: strPtr("2025-05-10")},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	ledger := NewGormLedger(db)
	ctx := context.Background()

	may, err := ledger.SumReceivables(ctx, 1, ReceivableFilter{
		Status:       models.ReceivableStatusReceived,
		ReceivedFrom: "2025-05-01",
		ReceivedTo:   "2025-05-31",
	})
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if may != 200 {
		t.Errorf("expected 200 received in May, got %v", may)
	}

	pending, err := ledger.SumReceivables(ctx, 1, ReceivableFilter{Status: models.ReceivableStatusPending})
	if err != nil {
		t.Fatalf("sum pending: %v", err)
	}
	if pending != 75 {
		t.Errorf("expected 75 pending, got %v", pending)
	}
}

func TestSumActiveOnlyTotals(t *testing.T) {
	db := openTestDB(t)
	accounts := []models.BankAccount{
		{UserID: 1, Balance: 1000, Active: true},
		{UserID: 1, Balance: 500, Active: false},
		{UserID: 2, Balance: 999, Active: true},
	}
	cards := []models.CreditCard{
		{UserID: 1, CurrentStatement: 320, Active: true},
		{UserID: 1, CurrentStatement: 100, Active: false},
	}
	investments := []models.Investment{
		{UserID: 1, CurrentValue: 9000, InvestedAmount: 8000, Active: true},
		{UserID: 1, CurrentValue: 100, InvestedAmount: 100, Active: false},
	}
	if err := db.Create(&accounts).Error; err != nil {
		t.Fatalf("seed accounts: %v", err)
	}
	if err := db.Create(&cards).Error; err != nil {
		t.Fatalf("seed cards: %v", err)
	}
	if err := db.Create(&investments).Error; err != nil {
		t.Fatalf("seed investments: %v", err)
	}

	ledger := NewGormLedger(db)
	ctx := context.Background()

	if v, err := ledger.SumBankBalances(ctx, 1); err != nil || v != 1000 {
		t.Errorf("bank balances: expected 1000, got %v (err=%v)", v, err)
	}
	if v, err := ledger.SumCardStatements(ctx, 1); err != nil || v != 320 {
		t.Errorf("card statements: expected 320, got %v (err=%v)", v, err)
	}
	if v, err := ledger.SumInvestments(ctx, 1); err != nil || v != 9000 {
		t.Errorf("investments: expected 9000, got %v (err=%v)", v, err)
	}
}

func TestSumPaidByCategory(t *testing.T) {
	db := openTestDB(t)
	seedPayables(t, db)
	extra := []models.Payable{
		{UserID: 1, Amount: 30, Status: models.PayableStatusPaid, DueDate: "2025-05-01", PaidDate: strPtr("2025-05-03"), Category: "food"},
		{UserID: 1, Amount: 400, Status: models.PayableStatusPaid, DueDate: "2024-01-01", PaidDate: strPtr("2024-01-05"), Category: "rent"},
	}
	if err := db.Create(&extra).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	ledger := NewGormLedger(db)

	byCategory, err := ledger.SumPaidByCategory(context.Background(), 1, "2025-01-01", "2025-06-30")
	if err != nil {
		t.Fatalf("group: %v", err)
	}
	if len(byCategory) != 1 {
		t.Fatalf("expected 1 category, got %v", byCategory)
	}
	if byCategory["food"] != 80 {
		t.Errorf("food: expected 80, got %v", byCategory["food"])
	}
}

// Engine over the real ledger: the category distribution must agree with
// the direct window sum.
func TestEngineWithGormLedgerCrossCheck(t *testing.T) {
	db := openTestDB(t)
	seedPayables(t, db)
	ledger := NewGormLedger(db)
	e := NewEngine(ledger, fixedClock)
	ctx := context.Background()

	d, err := e.Dashboard(ctx, 1)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	var sum float64
	for _, v := range d.ExpenseByCategory {
		sum += v
	}
	direct, err := ledger.SumPayables(ctx, 1, PayableFilter{
		Status:   models.PayableStatusPaid,
		PaidFrom: testNow.AddDate(0, -6, 0).Format(dateLayout),
		PaidTo:   testNow.Format(dateLayout),
	})
	if err != nil {
		t.Fatalf("direct sum: %v", err)
	}
	if sum != direct {
		t.Errorf("category totals %v != direct window sum %v", sum, direct)
	}
	if len(d.CashFlow) != 6 {
		t.Errorf("expected 6 cash flow entries, got %d", len(d.CashFlow))
	}
}
