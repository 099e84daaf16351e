package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	loanDomain "bank-lending-service/internal/domain/loan"
	paymentDomain "bank-lending-service/internal/domain/payment"
	"bank-lending-service/internal/domain/uow"

	"gorm.io/gorm"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)
	payRepo := NewPaymentRepository(db)

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		l := makeLoan("LN-COMMIT", "CU-1")
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		if l.ID == 0 {
			t.Fatalf("loan auto ID not set")
		}
		return r.Payments.Create(ctx, makePayment("P-COMMIT", l.ID, 6000, time.Now().UTC()))
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	// Verify post-commit visibility
	l, err := loanRepo.GetByLoanID(ctx, "LN-COMMIT")
	if err != nil {
		t.Fatalf("loan not visible after commit: %v", err)
	}
	sum, err := payRepo.SumByLoanID(ctx, l.ID)
	if err != nil || sum != 6000 {
		t.Fatalf("payment not visible after commit: sum=%v err=%v", sum, err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)

	sentinel := errors.New("boom")

	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		l := makeLoan("LN-ROLL", "CU-2")
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		if err := r.Payments.Create(ctx, makePayment("P-ROLL", l.ID, 10, time.Now().UTC())); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	if _, err := loanRepo.GetByLoanID(ctx, "LN-ROLL"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected loan absent after rollback, got %v", err)
	}
}

func TestGormUoW_WithinLoanTx_PaymentFlow(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)
	payRepo := NewPaymentRepository(db)

	seed := makeLoan("LN-TARGET", "CU-3")
	if err := loanRepo.Create(ctx, seed); err != nil {
		t.Fatalf("seed loan: %v", err)
	}

	// The full payment write path: lock, insert payment, flip status.
	if err := guow.WithinLoanTx(ctx, "LN-TARGET", func(r uow.Repos, l *loanDomain.Loan) error {
		if l == nil || l.LoanID != "LN-TARGET" || l.Status != loanDomain.StatusActive {
			t.Fatalf("unexpected loan passed to fn: %+v", l)
		}
		if err := r.Payments.Create(ctx, makePayment("P-FULL", l.ID, 144000, time.Now().UTC())); err != nil {
			return err
		}
		l.Status = loanDomain.StatusPaidOff
		l.StatusUpdatedAt = time.Now().UTC()
		return r.Loans.Save(ctx, l)
	}); err != nil {
		t.Fatalf("WithinLoanTx commit err: %v", err)
	}

	got, err := loanRepo.GetByLoanID(ctx, "LN-TARGET")
	if err != nil {
		t.Fatalf("GetByLoanID post-commit: %v", err)
	}
	if got.Status != loanDomain.StatusPaidOff {
		t.Fatalf("status not updated, got %s", got.Status)
	}
	if sum, _ := payRepo.SumByLoanID(ctx, got.ID); sum != 144000 {
		t.Fatalf("payment sum = %v, want 144000", sum)
	}
}

func TestGormUoW_WithinLoanTx_Rollback_NoPartialWrite(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)
	payRepo := NewPaymentRepository(db)

	seed := makeLoan("LN-RB", "CU-4")
	if err := loanRepo.Create(ctx, seed); err != nil {
		t.Fatalf("seed loan: %v", err)
	}

	sentinel := errors.New("stop")

	_ = guow.WithinLoanTx(ctx, "LN-RB", func(r uow.Repos, l *loanDomain.Loan) error {
		if err := r.Payments.Create(ctx, makePayment("P-RB", l.ID, 6000, time.Now().UTC())); err != nil {
			return err
		}
		l.Status = loanDomain.StatusPaidOff
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	// Rejected payment leaves loan and payment state untouched.
	got, err := loanRepo.GetByLoanID(ctx, "LN-RB")
	if err != nil {
		t.Fatalf("post-rollback GetByLoanID: %v", err)
	}
	if got.Status != loanDomain.StatusActive {
		t.Fatalf("expected ACTIVE after rollback, got %s", got.Status)
	}
	if sum, _ := payRepo.SumByLoanID(ctx, got.ID); sum != 0 {
		t.Fatalf("payment sum = %v, want 0 after rollback", sum)
	}
	var ps []paymentDomain.Payment
	if err := db.Where("loan_id = ?", got.ID).Find(&ps).Error; err != nil || len(ps) != 0 {
		t.Fatalf("expected no payments after rollback, got %d (err=%v)", len(ps), err)
	}
}

func TestGormUoW_WithinLoanTx_LoanNotFound(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)

	err := guow.WithinLoanTx(context.Background(), "LN-NOPE", func(r uow.Repos, l *loanDomain.Loan) error {
		t.Fatalf("callback should not be called when loan missing")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}
