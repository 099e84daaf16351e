package customer

import "time"

type CustomerDTO struct {
	CustomerID string    `json:"customer_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

type OverviewLoanDTO struct {
	LoanID        string  `json:"loan_id"`
	Principal     float64 `json:"principal"`
	TotalAmount   float64 `json:"total_amount"`
	TotalInterest float64 `json:"total_interest"`
	EMIAmount     float64 `json:"emi_amount"`
	AmountPaid    float64 `json:"amount_paid"`
	EMIsLeft      int     `json:"emis_left"`
}

type OverviewDTO struct {
	CustomerID string            `json:"customer_id"`
	TotalLoans int               `json:"total_loans"`
	Loans      []OverviewLoanDTO `json:"loans"`
}
