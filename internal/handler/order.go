package handler

import (
	"github.com/deppfellow/geology-api/internal/model"
	"github.com/deppfellow/geology-api/internal/serializer"
	"github.com/deppfellow/geology-api/internal/server"
	"github.com/deppfellow/geology-api/internal/service"
	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	Handler
	orders *service.OrderService
}

func NewOrderHandler(s *server.Server, orders *service.OrderService) *OrderHandler {
	return &OrderHandler{Handler: NewHandler(s), orders: orders}
}

// Create places an order. Prices come from the catalog, never the client.
func (h *OrderHandler) Create(c echo.Context, req *model.CreateOrderRequest) (serializer.Order, error) {
	order, err := h.orders.Create(c.Request().Context(), req)
	if err != nil {
		return serializer.Order{}, err
	}
	return serializer.OrderOf(order), nil
}
