package loan

import (
	"errors"
	"time"
)

type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusPaidOff Status = "PAID_OFF"
)

var (
	ErrNotFound          = errors.New("loan not found")
	ErrInvalidParameters = errors.New("invalid loan parameters")
	ErrAlreadyPaidOff    = errors.New("the required amount has already been paid, no further payments are necessary")
	ErrOverpayment       = errors.New("payment amount is greater than the remaining balance")
)

type Loan struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (UUID v4)
	LoanID string `gorm:"size:36;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	// Public id of the owning customer
	CustomerID      string    `gorm:"size:36;index:idx_loans_customer" json:"customer_id"`
	PrincipalAmount float64   `gorm:"type:decimal(18,2)" json:"principal_amount"`
	TotalAmount     float64   `gorm:"type:decimal(18,2)" json:"total_amount"`
	InterestRate    float64   `gorm:"type:decimal(6,2)" json:"interest_rate"`
	PeriodYears     int       `gorm:"column:period_years" json:"period_years"`
	MonthlyEMI      float64   `gorm:"column:monthly_emi;type:decimal(18,2)" json:"monthly_emi"`
	Status          Status    `gorm:"type:enum('ACTIVE','PAID_OFF');default:'ACTIVE'" json:"status"`
	StatusUpdatedAt time.Time `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }
