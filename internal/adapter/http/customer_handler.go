package http

import (
	"net/http"

	"bank-lending-service/internal/usecase/customer"

	"github.com/labstack/echo/v4"
)

type CustomerHandler struct{ uc *customer.Usecase }

func NewCustomerHandler(uc *customer.Usecase) *CustomerHandler { return &CustomerHandler{uc: uc} }

type createCustomerReq struct {
	Name string `json:"name" validate:"required"`
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req createCustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), req.Name)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *CustomerHandler) Overview(c echo.Context) error {
	customerID := c.Param("customer_id")
	dto, err := h.uc.Overview(c.Request().Context(), customerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
