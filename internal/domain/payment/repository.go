package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	// ListByLoanID returns payments ordered by payment_date ascending.
	ListByLoanID(ctx context.Context, loanID uint64) ([]Payment, error)
	// SumByLoanID returns the total amount paid against a loan, 0 when none.
	SumByLoanID(ctx context.Context, loanID uint64) (float64, error)
	DeleteAll(ctx context.Context) error
}
