package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/orders.
// The principal becomes the order's customer; line item prices are captured
// from the menu by the command handler, never taken from the request.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.ActionOrderCreate)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	items := make([]commands.OrderItemRequest, len(req.Items))
	for i, item := range req.Items {
		menuItemID, itemErr := kernel.UUIDFromString(item.MenuItemID)
		if itemErr != nil {
			return respondBadRequest(ctx, "invalid menu item id: "+item.MenuItemID)
		}
		items[i] = commands.OrderItemRequest{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		principal.ID(),
		restaurantID,
		items,
		req.DeliveryAddress,
	)
	if err != nil {
		return respondBadRequest(ctx, "invalid order data: "+err.Error())
	}

	if err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetCustomerOrders handles GET /api/orders/customer.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.ActionOrderListCustomer)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(principal.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.queries.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetRestaurantOrders handles GET /api/orders/restaurant.
// Returns orders for every restaurant the principal owns or manages.
func (s *Server) GetRestaurantOrders(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.ActionOrderListRestaurant)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetRestaurantOrdersQuery(principal.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.queries.GetRestaurantOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetDriverOrders handles GET /api/orders/driver.
func (s *Server) GetDriverOrders(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.ActionOrderListDriver)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDriverOrdersQuery(principal.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.queries.GetDriverOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrder handles GET /api/orders/:id.
// Any authenticated principal may read any order by ID.
func (s *Server) GetOrder(ctx echo.Context) error {
	if _, err := s.authorize(ctx, services.ActionOrderRead); err != nil {
		return respondError(ctx, err)
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := toOrderResponse(result.OrderResponse)
	response.Items = make([]OrderItemResponse, len(result.Items))
	for i, item := range result.Items {
		response.Items[i] = OrderItemResponse{
			MenuItemID: item.MenuItemID.String(),
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /api/orders/:id/status.
// Drivers moving an order to out_for_delivery are recorded as its driver.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.ActionOrderTransition)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	next, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondBadRequest(ctx, "invalid status: "+req.Status)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, next, principal.ID(), principal.Role())
	if err != nil {
		return respondBadRequest(ctx, "invalid status update: "+err.Error())
	}

	if err := s.commands.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": next.String()})
}
