package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByCustomerID(ctx context.Context, customerID string) (*Customer, error)
	// List returns customers newest first.
	List(ctx context.Context) ([]Customer, error)
	DeleteAll(ctx context.Context) error
}
