package admin

import (
	"context"

	"bank-lending-service/internal/domain/uow"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Reset wipes payments, loans and customers in one transaction. Development
// convenience only; the route is not registered in production.
func (u *Usecase) Reset(ctx context.Context) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Payments.DeleteAll(ctx); err != nil {
			return err
		}
		if err := r.Loans.DeleteAll(ctx); err != nil {
			return err
		}
		return r.Customers.DeleteAll(ctx)
	})
}
