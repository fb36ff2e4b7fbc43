package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// CreateReview handles POST /api/reviews.
// Recording the review also folds its rating into the menu item's running
// average inside the same transaction.
func (s *Server) CreateReview(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.ActionReviewCreate)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CreateReviewRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(req.MenuItemID)
	if err != nil {
		return respondBadRequest(ctx, "invalid menu item id")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	reviewID := kernel.NewUUID()
	cmd, err := commands.NewRecordReviewCommand(
		reviewID,
		principal.ID(),
		menuItemID,
		orderID,
		req.Rating,
		req.Comment,
	)
	if err != nil {
		return respondBadRequest(ctx, "invalid review data: "+err.Error())
	}

	if err := s.commands.RecordReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": reviewID.String()})
}

// GetMenuItemReviews handles GET /api/reviews/menuItem/:menuItemId.
func (s *Server) GetMenuItemReviews(ctx echo.Context) error {
	menuItemID, err := kernel.UUIDFromString(ctx.Param("menuItemId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid menu item id")
	}

	query, err := queries.NewGetMenuItemReviewsQuery(menuItemID)
	if err != nil {
		return respondError(ctx, err)
	}

	reviews, err := s.queries.GetMenuItemReviews.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ReviewResponse, len(reviews))
	for i, r := range reviews {
		response[i] = ReviewResponse{
			ID:         r.ID.String(),
			UserID:     r.UserID.String(),
			MenuItemID: r.MenuItemID.String(),
			OrderID:    r.OrderID.String(),
			Rating:     r.Rating,
			Comment:    r.Comment,
			CreatedAt:  r.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
