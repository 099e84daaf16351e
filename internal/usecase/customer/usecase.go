package customer

import (
	"context"
	"errors"
	"strings"

	customerDomain "bank-lending-service/internal/domain/customer"
	loanDomain "bank-lending-service/internal/domain/loan"
	paymentDomain "bank-lending-service/internal/domain/payment"
	"bank-lending-service/internal/usecase/ledger"
	"bank-lending-service/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	customers customerDomain.Repository
	loans     loanDomain.Repository
	payments  paymentDomain.Repository
}

func NewUsecase(customers customerDomain.Repository, loans loanDomain.Repository, payments paymentDomain.Repository) *Usecase {
	return &Usecase{customers: customers, loans: loans, payments: payments}
}

func (u *Usecase) Create(ctx context.Context, name string) (*CustomerDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	c := &customerDomain.Customer{CustomerID: id.New(), Name: name}
	if err := u.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return &CustomerDTO{CustomerID: c.CustomerID, Name: c.Name, CreatedAt: c.CreatedAt}, nil
}

func (u *Usecase) List(ctx context.Context) ([]CustomerDTO, error) {
	cs, err := u.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CustomerDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, CustomerDTO{CustomerID: c.CustomerID, Name: c.Name, CreatedAt: c.CreatedAt})
	}
	return out, nil
}

// Overview aggregates every loan of a customer through the same ledger
// computation the per-loan view uses, so the two always agree.
func (u *Usecase) Overview(ctx context.Context, customerID string) (*OverviewDTO, error) {
	if _, err := u.customers.GetByCustomerID(ctx, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customerDomain.ErrNotFound
		}
		return nil, err
	}

	loans, err := u.loans.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(loans) == 0 {
		return nil, customerDomain.ErrNoLoans
	}

	out := make([]OverviewLoanDTO, 0, len(loans))
	for i := range loans {
		l := &loans[i]
		ps, err := u.payments.ListByLoanID(ctx, l.ID)
		if err != nil {
			return nil, err
		}
		snap := ledger.Compute(l, ps)
		out = append(out, OverviewLoanDTO{
			LoanID:        l.LoanID,
			Principal:     l.PrincipalAmount,
			TotalAmount:   l.TotalAmount,
			TotalInterest: snap.TotalInterest,
			EMIAmount:     l.MonthlyEMI,
			AmountPaid:    snap.AmountPaid,
			EMIsLeft:      snap.EMIsLeft,
		})
	}

	return &OverviewDTO{CustomerID: customerID, TotalLoans: len(out), Loans: out}, nil
}
