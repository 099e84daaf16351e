package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	loanDomain "bank-lending-service/internal/domain/loan"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no mysql ENUM) ---

type customerSQLite struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	CustomerID string    `gorm:"size:36;column:customer_id"`
	Name       string    `gorm:"column:name"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (customerSQLite) TableName() string { return "customers" }

type loanSQLite struct {
	ID              uint64    `gorm:"primaryKey;column:id"`
	LoanID          string    `gorm:"size:36;column:loan_id"`
	CustomerID      string    `gorm:"size:36;column:customer_id"`
	PrincipalAmount float64   `gorm:"column:principal_amount"`
	TotalAmount     float64   `gorm:"column:total_amount"`
	InterestRate    float64   `gorm:"column:interest_rate"`
	PeriodYears     int       `gorm:"column:period_years"`
	MonthlyEMI      float64   `gorm:"column:monthly_emi"`
	Status          string    `gorm:"type:text;column:status"` // no enum
	StatusUpdatedAt time.Time `gorm:"column:status_updated_at"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type paymentSQLite struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	PaymentID   string    `gorm:"size:36;column:payment_id"`
	LoanID      uint64    `gorm:"column:loan_id"`
	Amount      float64   `gorm:"column:amount"`
	PaymentType string    `gorm:"type:text;column:payment_type"` // no enum
	PaymentDate time.Time `gorm:"column:payment_date"`
}

func (paymentSQLite) TableName() string { return "payments" }

// openTestDB creates an in-memory sqlite DB and migrates the sqlite-safe
// schemas, NOT the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&customerSQLite{}, &loanSQLite{}, &paymentSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeLoan(loanID, customerID string) *loanDomain.Loan {
	return &loanDomain.Loan{
		LoanID:          loanID,
		CustomerID:      customerID,
		PrincipalAmount: 120000,
		TotalAmount:     144000,
		InterestRate:    10,
		PeriodYears:     2,
		MonthlyEMI:      6000,
		Status:          loanDomain.StatusActive,
		StatusUpdatedAt: time.Now().UTC(),
	}
}

// ----------------------------- Tests -----------------------------

func TestLoanRepo_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan("LN-1", "CU-1")
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.ID == 0 {
		t.Fatalf("numeric id not assigned")
	}

	got, err := repo.GetByLoanID(ctx, "LN-1")
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.CustomerID != "CU-1" || got.TotalAmount != 144000 || got.Status != loanDomain.StatusActive {
		t.Fatalf("unexpected loan: %+v", got)
	}
}

func TestLoanRepo_GetByLoanID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)

	_, err := repo.GetByLoanID(context.Background(), "LN-NOPE")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestLoanRepo_Save_UpdatesStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan("LN-2", "CU-1")
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	l.Status = loanDomain.StatusPaidOff
	l.StatusUpdatedAt = time.Now().UTC()
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByLoanID(ctx, "LN-2")
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.Status != loanDomain.StatusPaidOff {
		t.Fatalf("status = %s, want PAID_OFF", got.Status)
	}
}

func TestLoanRepo_ListByCustomerID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	for _, id := range []string{"LN-A", "LN-B"} {
		if err := repo.Create(ctx, makeLoan(id, "CU-LIST")); err != nil {
			t.Fatalf("Create %s: %v", id, err)
		}
	}
	if err := repo.Create(ctx, makeLoan("LN-OTHER", "CU-X")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.ListByCustomerID(ctx, "CU-LIST")
	if err != nil {
		t.Fatalf("ListByCustomerID: %v", err)
	}
	if len(got) != 2 || got[0].LoanID != "LN-A" || got[1].LoanID != "LN-B" {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestLoanRepo_DeleteAll(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, makeLoan("LN-DEL", "CU-1")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if _, err := repo.GetByLoanID(ctx, "LN-DEL"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected empty table, got %v", err)
	}
}
