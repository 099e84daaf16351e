package http

import (
	"errors"
	"net/http"

	customerDomain "bank-lending-service/internal/domain/customer"
	loanDomain "bank-lending-service/internal/domain/loan"

	"github.com/labstack/echo/v4"
)

// respondError maps domain errors to HTTP codes. Anything unknown is a
// collaborator failure and stays opaque to the caller.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, customerDomain.ErrNotFound),
		errors.Is(err, customerDomain.ErrNoLoans),
		errors.Is(err, loanDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrAlreadyPaidOff),
		errors.Is(err, loanDomain.ErrOverpayment),
		errors.Is(err, loanDomain.ErrInvalidParameters):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
