package ledger

import "time"

type ApplyPaymentInput struct {
	Amount      float64 `json:"amount"`
	PaymentType string  `json:"payment_type"`
}

type PaymentResultDTO struct {
	PaymentID        string  `json:"payment_id"`
	LoanID           string  `json:"loan_id"`
	Message          string  `json:"message"`
	RemainingBalance float64 `json:"remaining_balance"`
	EMIsLeft         int     `json:"emis_left"`
	Status           string  `json:"status"`
}

type TransactionDTO struct {
	TransactionID string    `json:"transaction_id"`
	Date          time.Time `json:"date"`
	Amount        float64   `json:"amount"`
	Type          string    `json:"type"`
}

type LedgerDTO struct {
	LoanID        string           `json:"loan_id"`
	CustomerID    string           `json:"customer_id"`
	Principal     float64          `json:"principal"`
	TotalAmount   float64          `json:"total_amount"`
	MonthlyEMI    float64          `json:"monthly_emi"`
	AmountPaid    float64          `json:"amount_paid"`
	BalanceAmount float64          `json:"balance_amount"`
	EMIsLeft      int              `json:"emis_left"`
	Transactions  []TransactionDTO `json:"transactions"`
}
