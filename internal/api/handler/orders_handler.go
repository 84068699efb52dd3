package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/admin-console/internal/console"
	"github.com/jobportal/admin-console/internal/core/domain"
	"github.com/jobportal/admin-console/internal/core/ports"
)

// OrdersHandler serves the order table and its status transitions.
type OrdersHandler struct {
	registry *console.Registry
	orders   ports.OrdersAPI
}

func NewOrdersHandler(registry *console.Registry, orders ports.OrdersAPI) *OrdersHandler {
	return &OrdersHandler{registry: registry, orders: orders}
}

// ListOrders renders the order table view.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        query  query     string  false  "substring filter on customer name and status"
// @Param        page   query     int     false  "1-based page number"
// @Success      200    {object}  table.View[domain.Order]
// @Router       /admin/order/all [get]
func (h *OrdersHandler) ListOrders(c echo.Context) error {
	return listView(c, h.registry.Orders(), "order")
}

// OrderDetail renders one order for the detail screen.
//
// @Summary      Show one order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "order id"
// @Success      200  {object}  domain.Order
// @Failure      404  {object}  map[string]string
// @Router       /admin/order/detail/{id} [get]
func (h *OrdersHandler) OrderDetail(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	token, err := sessionToken(c)
	if err != nil {
		return err
	}

	order, err := h.orders.GetOrder(c.Request().Context(), token, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return err
		}
		return &domain.LoadError{Entity: "order", Cause: err}
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrdersHandler) DeleteOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return dispatch(c, h.registry.Orders(), "order", "delete", func(ctx context.Context, token string) error {
		return h.orders.DeleteOrder(ctx, token, id)
	})
}

// SetOrderStatus applies an enumerated status transition in place.
func (h *OrdersHandler) SetOrderStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	status := domain.OrderStatus(c.QueryParam("status"))
	if !status.IsValid() {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order status")
	}

	return dispatchInPlace(c, h.registry.Orders(), "order", "status", c.Param("id"),
		func(ctx context.Context, token string) error {
			return h.orders.SetOrderStatus(ctx, token, id, status)
		},
		func(o *domain.Order) { o.Status = status },
	)
}
