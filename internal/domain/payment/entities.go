package payment

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("payment not found")

type Type string

const (
	TypeEMI     Type = "EMI"
	TypeLumpSum Type = "LUMP_SUM"
)

// Valid reports whether t is one of the accepted payment types.
func (t Type) Valid() bool { return t == TypeEMI || t == TypeLumpSum }

// Payments are append-only: once recorded they are never updated or deleted
// (the dev-only bulk reset aside).
type Payment struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (UUID v4)
	PaymentID string `gorm:"size:36;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	// FK to loans.id (numeric)
	LoanID      uint64    `gorm:"column:loan_id;not null;index:idx_payments_loan" json:"-"`
	Amount      float64   `gorm:"type:decimal(18,2)" json:"amount"`
	PaymentType Type      `gorm:"type:enum('EMI','LUMP_SUM')" json:"payment_type"`
	PaymentDate time.Time `gorm:"autoCreateTime" json:"payment_date"`
}

func (Payment) TableName() string { return "payments" }
