package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// GetProfile handles GET /api/users/profile.
func (s *Server) GetProfile(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.ActionProfileRead)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetProfileQuery(principal.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	profile, err := s.queries.GetProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProfileResponse{
		ID:        profile.ID.String(),
		Name:      profile.Name,
		Phone:     profile.Phone,
		Address:   profile.Address,
		Role:      profile.Role,
		Favorites: toUUIDStrings(profile.Favorites),
	})
}

// UpdateProfile handles PUT /api/users/profile.
// Empty fields keep their current values.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.ActionProfileUpdate)
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateProfileCommand(principal.ID(), req.Name, req.Phone, req.Address)
	if err != nil {
		return respondBadRequest(ctx, "invalid profile data: "+err.Error())
	}

	if err := s.commands.UpdateProfile.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetFavorites handles GET /api/users/favorites.
func (s *Server) GetFavorites(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.ActionFavoritesManage)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetProfileQuery(principal.ID())
	if err != nil {
		return respondError(ctx, err)
	}

	profile, err := s.queries.GetProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUUIDStrings(profile.Favorites))
}

// AddFavorite handles POST /api/users/favorites/:menuItemId.
// Adding an item that is already a favorite is a no-op.
func (s *Server) AddFavorite(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.ActionFavoritesManage)
	if err != nil {
		return respondError(ctx, err)
	}

	menuItemID, err := kernel.UUIDFromString(ctx.Param("menuItemId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid menu item id")
	}

	cmd, err := commands.NewAddFavoriteCommand(principal.ID(), menuItemID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.AddFavorite.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RemoveFavorite handles DELETE /api/users/favorites/:menuItemId.
// Removing an absent favorite is a no-op.
func (s *Server) RemoveFavorite(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.ActionFavoritesManage)
	if err != nil {
		return respondError(ctx, err)
	}

	menuItemID, err := kernel.UUIDFromString(ctx.Param("menuItemId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid menu item id")
	}

	cmd, err := commands.NewRemoveFavoriteCommand(principal.ID(), menuItemID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.RemoveFavorite.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
