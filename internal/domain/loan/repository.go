package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row for the duration of the
	// surrounding transaction; writers against the same loan serialize here.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
	DeleteAll(ctx context.Context) error
}
