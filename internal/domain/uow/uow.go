package uow

import (
	"context"

	"bank-lending-service/internal/domain/customer"
	"bank-lending-service/internal/domain/loan"
	"bank-lending-service/internal/domain/payment"
)

type Repos struct {
	Customers customer.Repository
	Loans     loan.Repository
	Payments  payment.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in. All writers
	// against one loan serialize on this lock, so balance-check-then-insert
	// is atomic per loan.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
