package http

import (
	"net/http"

	"bank-lending-service/internal/usecase/admin"

	"github.com/labstack/echo/v4"
)

type DevHandler struct{ uc *admin.Usecase }

func NewDevHandler(uc *admin.Usecase) *DevHandler { return &DevHandler{uc: uc} }

func (h *DevHandler) ClearDB(c echo.Context) error {
	if err := h.uc.Reset(c.Request().Context()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Database cleared."})
}
