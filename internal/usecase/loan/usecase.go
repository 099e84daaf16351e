package loan

import (
	"context"
	"errors"
	"time"

	customerDomain "bank-lending-service/internal/domain/customer"
	loanDomain "bank-lending-service/internal/domain/loan"
	"bank-lending-service/pkg/id"
	"bank-lending-service/pkg/money"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct {
	customers customerDomain.Repository
	loans     loanDomain.Repository
}

func NewUsecase(customers customerDomain.Repository, loans loanDomain.Repository) *Usecase {
	return &Usecase{customers: customers, loans: loans}
}

var oneHundred = decimal.NewFromInt(100)

// Create originates a simple-interest loan:
//
//	interest = P * N * (R/100)
//	total    = P + interest          (2dp, half up)
//	emi      = total / (N * 12)      (2dp, half up)
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	// Guard before computing: N = 0 must never reach the EMI division.
	if in.CustomerID == "" || in.LoanAmount <= 0 || in.PeriodYears <= 0 || in.InterestRateYearly <= 0 {
		return nil, loanDomain.ErrInvalidParameters
	}

	if _, err := u.customers.GetByCustomerID(ctx, in.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customerDomain.ErrNotFound
		}
		return nil, err
	}

	principal := money.FromFloat(in.LoanAmount)
	years := decimal.NewFromInt(int64(in.PeriodYears))
	rate := money.FromFloat(in.InterestRateYearly)

	interest := principal.Mul(years).Mul(rate.Div(oneHundred))
	total := money.Round2(principal.Add(interest))
	emi := money.Round2(total.Div(years.Mul(decimal.NewFromInt(12))))

	l := &loanDomain.Loan{
		LoanID:          id.New(),
		CustomerID:      in.CustomerID,
		PrincipalAmount: money.Float(money.Round2(principal)),
		TotalAmount:     money.Float(total),
		InterestRate:    in.InterestRateYearly,
		PeriodYears:     in.PeriodYears,
		MonthlyEMI:      money.Float(emi),
		Status:          loanDomain.StatusActive,
		StatusUpdatedAt: time.Now().UTC(),
	}

	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(l), nil
}

func toDTO(l *loanDomain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:          l.LoanID,
		CustomerID:      l.CustomerID,
		PrincipalAmount: l.PrincipalAmount,
		TotalAmount:     l.TotalAmount,
		InterestRate:    l.InterestRate,
		PeriodYears:     l.PeriodYears,
		MonthlyEMI:      l.MonthlyEMI,
		Status:          string(l.Status),
		CreatedAt:       l.CreatedAt,
	}
}
