package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// CreateMenuItem handles POST /api/menus.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.ActionMenuCreate)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CreateMenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	menuItemID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuItemCommand(
		menuItemID,
		restaurantID,
		principal.ID(),
		principal.Role(),
		req.Name,
		req.Price,
		req.Category,
		req.Description,
	)
	if err != nil {
		return respondBadRequest(ctx, "invalid menu item data: "+err.Error())
	}

	if err := s.commands.CreateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": menuItemID.String()})
}

// GetRestaurantMenu handles GET /api/menus/restaurant/:restaurantId.
func (s *Server) GetRestaurantMenu(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	query, err := queries.NewGetRestaurantMenuQuery(restaurantID)
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := s.queries.GetRestaurantMenu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMenuItemResponses(items))
}

// GetPopularMenuItems handles GET /api/menus/popular.
func (s *Server) GetPopularMenuItems(ctx echo.Context) error {
	query := queries.NewGetPopularMenuItemsQuery()

	items, err := s.queries.GetPopularMenuItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMenuItemResponses(items))
}

// GetMenuItem handles GET /api/menus/:id.
func (s *Server) GetMenuItem(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid menu item id")
	}

	query, err := queries.NewGetMenuItemQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	item, err := s.queries.GetMenuItem.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMenuItemResponse(item))
}

// UpdateMenuItem handles PUT /api/menus/:id.
// Absent fields keep their current values.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.ActionMenuUpdate)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid menu item id")
	}

	var req UpdateMenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateMenuItemCommand(
		id,
		principal.ID(),
		principal.Role(),
		req.Name,
		req.Price,
		req.Category,
		req.Description,
		req.IsAvailable,
	)
	if err != nil {
		return respondBadRequest(ctx, "invalid menu item data: "+err.Error())
	}

	if err := s.commands.UpdateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeleteMenuItem handles DELETE /api/menus/:id.
func (s *Server) DeleteMenuItem(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.ActionMenuDelete)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid menu item id")
	}

	cmd, err := commands.NewDeleteMenuItemCommand(id, principal.ID(), principal.Role())
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.DeleteMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
