package ledger

import (
	"context"
	"errors"
	"time"

	loanDomain "bank-lending-service/internal/domain/loan"
	paymentDomain "bank-lending-service/internal/domain/payment"
	"bank-lending-service/internal/domain/uow"
	"bank-lending-service/pkg/id"
	"bank-lending-service/pkg/money"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct {
	loans    loanDomain.Repository
	payments paymentDomain.Repository
	uow      uow.UnitOfWork
}

// NewUsecase: read paths use the repos directly, ApplyPayment goes through
// the UoW so the whole check-then-insert sequence runs under the loan lock.
func NewUsecase(loans loanDomain.Repository, payments paymentDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, payments: payments, uow: tx}
}

// ApplyPayment validates and records a payment against a loan.
//
// Strict no-overpayment: a payment above the remaining balance is rejected,
// a payment of exactly the remaining balance always succeeds and flips the
// loan to PAID_OFF. PAID_OFF is terminal. On any rejection nothing is
// written (the transaction rolls back).
func (u *Usecase) ApplyPayment(ctx context.Context, loanID string, in ApplyPaymentInput) (*PaymentResultDTO, error) {
	if in.Amount <= 0 || !paymentDomain.Type(in.PaymentType).Valid() {
		return nil, loanDomain.ErrInvalidParameters
	}
	if u.uow == nil {
		return nil, errors.New("ledger: unit of work not configured")
	}

	var dto *PaymentResultDTO

	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if l.Status == loanDomain.StatusPaidOff {
			return loanDomain.ErrAlreadyPaidOff
		}

		paid, err := r.Payments.SumByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		balance := money.Round2(money.FromFloat(l.TotalAmount).Sub(money.FromFloat(paid)))
		if balance.Sign() <= 0 {
			return loanDomain.ErrAlreadyPaidOff
		}

		amount := money.FromFloat(in.Amount)
		if amount.GreaterThan(balance) {
			return loanDomain.ErrOverpayment
		}

		p := &paymentDomain.Payment{
			PaymentID:   id.New(),
			LoanID:      l.ID,
			Amount:      in.Amount,
			PaymentType: paymentDomain.Type(in.PaymentType),
			PaymentDate: time.Now().UTC(),
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		newBalance := money.Round2(balance.Sub(amount))
		if newBalance.Sign() < 0 {
			newBalance = decimal.Zero
		}
		if newBalance.Sign() == 0 {
			l.Status = loanDomain.StatusPaidOff
			l.StatusUpdatedAt = time.Now().UTC()
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
		}

		dto = &PaymentResultDTO{
			PaymentID:        p.PaymentID,
			LoanID:           l.LoanID,
			Message:          "Payment recorded successfully.",
			RemainingBalance: money.Float(newBalance),
			EMIsLeft:         money.InstallmentsLeft(newBalance, money.FromFloat(l.MonthlyEMI)),
			Status:           string(l.Status),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// Ledger returns the full per-loan view: stored figures plus the derived
// snapshot and the ordered transaction history.
func (u *Usecase) Ledger(ctx context.Context, loanID string) (*LedgerDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}

	ps, err := u.payments.ListByLoanID(ctx, l.ID)
	if err != nil {
		return nil, err
	}

	snap := Compute(l, ps)
	txs := make([]TransactionDTO, 0, len(ps))
	for _, p := range ps {
		txs = append(txs, TransactionDTO{
			TransactionID: p.PaymentID,
			Date:          p.PaymentDate,
			Amount:        p.Amount,
			Type:          string(p.PaymentType),
		})
	}

	return &LedgerDTO{
		LoanID:        l.LoanID,
		CustomerID:    l.CustomerID,
		Principal:     l.PrincipalAmount,
		TotalAmount:   l.TotalAmount,
		MonthlyEMI:    l.MonthlyEMI,
		AmountPaid:    snap.AmountPaid,
		BalanceAmount: snap.BalanceAmount,
		EMIsLeft:      snap.EMIsLeft,
		Transactions:  txs,
	}, nil
}
