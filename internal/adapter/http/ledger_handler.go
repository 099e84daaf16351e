package http

import (
	"net/http"

	"bank-lending-service/internal/usecase/ledger"

	"github.com/labstack/echo/v4"
)

type LedgerHandler struct{ uc *ledger.Usecase }

func NewLedgerHandler(uc *ledger.Usecase) *LedgerHandler { return &LedgerHandler{uc: uc} }

type applyPaymentReq struct {
	Amount      float64 `json:"amount" validate:"required,gt=0,dec2"`
	PaymentType string  `json:"payment_type" validate:"required,oneof=EMI LUMP_SUM"`
}

func (h *LedgerHandler) ApplyPayment(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req applyPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.ApplyPayment(c.Request().Context(), loanID, ledger.ApplyPaymentInput{
		Amount:      req.Amount,
		PaymentType: req.PaymentType,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LedgerHandler) GetLedger(c echo.Context) error {
	dto, err := h.uc.Ledger(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
