package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"libgo-server/internal/dto"
	"libgo-server/internal/model"
	"libgo-server/internal/service"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) Place(c echo.Context) error {
	ctx := c.Request().Context()

	var order model.Order
	if err := c.Bind(&order); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if order.BookID == "" || order.CustomerEmail == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bookId and customerEmail are required")
	}

	if err := h.orderService.Place(ctx, &order); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, &order)
}

func (h *OrderHandler) ListByCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.ListByCustomer(ctx, c.QueryParam("customerEmail"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.OrderStatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	modified, err := h.orderService.UpdateStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, &dto.ModifyResult{
		MatchedCount:  modified,
		ModifiedCount: modified,
	})
}
