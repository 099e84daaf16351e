package customer

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("customer not found")
	ErrNoLoans  = errors.New("no loans found for this customer")
)

type Customer struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-"`
	CustomerID string    `gorm:"size:36;uniqueIndex:ux_customers_customer_id" json:"customer_id"`
	Name       string    `gorm:"size:255" json:"name"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Customer) TableName() string { return "customers" }
