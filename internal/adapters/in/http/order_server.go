package http

import (
	"net/http"

	"registry/internal/core/application/usecases/commands"
	"registry/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// OrderServer exposes the order use cases over HTTP.
type OrderServer struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	listOrdersHandler queries.ListOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler

	logger *zap.Logger
}

// NewOrderServer wires the order command and query handlers into an HTTP server.
func NewOrderServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	logger *zap.Logger,
) *OrderServer {
	return &OrderServer{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderHandler:          getOrderHandler,
		logger:                   logger.With(zap.String("component", "order_server")),
	}
}

// Register mounts the order routes on e.
func (s *OrderServer) Register(e *echo.Echo) {
	e.GET("/orders", s.ListOrders)
	e.GET("/orders/:id", s.GetOrder)
	e.POST("/orders", s.CreateOrder)
	e.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	e.DELETE("/orders/:id", s.DeleteOrder)
}

// ListOrders handles GET /orders with an optional userId filter.
func (s *OrderServer) ListOrders(c echo.Context) error {
	userID := c.QueryParam("userId")

	orders, err := s.listOrdersHandler.Handle(c.Request().Context(), queries.NewListOrdersQuery(&userID))
	if err != nil {
		return writeError(c, s.logger, err, msgOrderNotFound, msgCreateOrderInvalid)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}
	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /orders/:id.
func (s *OrderServer) GetOrder(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errorJSON(c, http.StatusNotFound, msgOrderNotFound)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return errorJSON(c, http.StatusNotFound, msgOrderNotFound)
	}

	o, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, err, msgOrderNotFound, msgCreateOrderInvalid)
	}
	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// CreateOrder handles POST /orders.
func (s *OrderServer) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, msgCreateOrderInvalid)
	}

	items, err := toItems(req.Items)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, msgCreateOrderInvalid)
	}

	cmd, err := commands.NewCreateOrderCommand(req.UserID, items)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, msgCreateOrderInvalid)
	}

	created, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, s.logger, err, msgOrderNotFound, msgCreateOrderInvalid)
	}

	s.logger.Info("order created",
		zap.String("order_id", created.ID().String()),
		zap.String("user_id", created.UserID()),
		zap.Float64("total", created.Total()),
	)
	return c.JSON(http.StatusCreated, toOrderResponse(created))
}

// ChangeOrderStatus handles PATCH /orders/:id/status.
// A missing order wins over an invalid status.
func (s *OrderServer) ChangeOrderStatus(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errorJSON(c, http.StatusNotFound, msgOrderNotFound)
	}

	// An unreadable body carries no status, which the handler rejects after the lookup.
	var req ChangeOrderStatusRequest
	if bindErr := c.Bind(&req); bindErr != nil {
		req.Status = ""
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, req.Status)
	if err != nil {
		return errorJSON(c, http.StatusNotFound, msgOrderNotFound)
	}

	updated, err := s.changeOrderStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, s.logger, err, msgOrderNotFound, invalidStatusMessage())
	}

	s.logger.Info("order status changed",
		zap.String("order_id", updated.ID().String()),
		zap.Stringer("status", updated.Status()),
	)
	return c.JSON(http.StatusOK, toOrderResponse(updated))
}

// DeleteOrder handles DELETE /orders/:id.
func (s *OrderServer) DeleteOrder(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errorJSON(c, http.StatusNotFound, msgOrderNotFound)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return errorJSON(c, http.StatusNotFound, msgOrderNotFound)
	}

	if err = s.deleteOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, err, msgOrderNotFound, msgCreateOrderInvalid)
	}
	return c.NoContent(http.StatusNoContent)
}
