package ledger

import (
	loanDomain "bank-lending-service/internal/domain/loan"
	paymentDomain "bank-lending-service/internal/domain/payment"
	"bank-lending-service/pkg/money"

	"github.com/shopspring/decimal"
)

// Snapshot is the derived view of a loan given its payment history. Nothing
// in it is ever stored; both the ledger and the customer overview recompute
// it from the same inputs so the two read paths cannot drift.
type Snapshot struct {
	AmountPaid    float64
	BalanceAmount float64
	EMIsLeft      int
	TotalInterest float64
}

// Compute is a pure function of (loan, payments): same inputs, same snapshot.
func Compute(l *loanDomain.Loan, payments []paymentDomain.Payment) Snapshot {
	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(money.FromFloat(p.Amount))
	}
	paid = money.Round2(paid)

	balance := money.Round2(money.FromFloat(l.TotalAmount).Sub(paid))
	if balance.Sign() < 0 {
		balance = decimal.Zero
	}

	return Snapshot{
		AmountPaid:    money.Float(paid),
		BalanceAmount: money.Float(balance),
		EMIsLeft:      money.InstallmentsLeft(balance, money.FromFloat(l.MonthlyEMI)),
		TotalInterest: money.Round2Float(l.TotalAmount - l.PrincipalAmount),
	}
}
