package loan

import "time"

type CreateLoanInput struct {
	CustomerID         string  `json:"customer_id"`
	LoanAmount         float64 `json:"loan_amount"`
	PeriodYears        int     `json:"loan_period_years"`
	InterestRateYearly float64 `json:"interest_rate_yearly"`
}

type LoanDTO struct {
	LoanID          string    `json:"loan_id"`
	CustomerID      string    `json:"customer_id"`
	PrincipalAmount float64   `json:"principal_amount"`
	TotalAmount     float64   `json:"total_amount"`
	InterestRate    float64   `json:"interest_rate"`
	PeriodYears     int       `json:"period_years"`
	MonthlyEMI      float64   `json:"monthly_emi"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}
