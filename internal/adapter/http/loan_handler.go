package http

import (
	"net/http"

	"bank-lending-service/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	CustomerID         string  `json:"customer_id" validate:"required,uuid4"`
	LoanAmount         float64 `json:"loan_amount" validate:"required,gt=0,dec2"`
	LoanPeriodYears    int     `json:"loan_period_years" validate:"required,gt=0"`
	InterestRateYearly float64 `json:"interest_rate_yearly" validate:"required,gt=0,dec2"`
}

type createLoanResp struct {
	LoanID             string  `json:"loan_id"`
	CustomerID         string  `json:"customer_id"`
	TotalAmountPayable float64 `json:"total_amount_payable"`
	MonthlyEMI         float64 `json:"monthly_emi"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		CustomerID:         req.CustomerID,
		LoanAmount:         req.LoanAmount,
		PeriodYears:        req.LoanPeriodYears,
		InterestRateYearly: req.InterestRateYearly,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, createLoanResp{
		LoanID:             dto.LoanID,
		CustomerID:         dto.CustomerID,
		TotalAmountPayable: dto.TotalAmount,
		MonthlyEMI:         dto.MonthlyEMI,
	})
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
