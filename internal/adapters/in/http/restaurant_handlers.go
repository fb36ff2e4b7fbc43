package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// CreateRestaurant handles POST /api/restaurants.
// The principal becomes the restaurant's owner.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.ActionRestaurantCreate)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CreateRestaurantRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	location, err := kernel.NewGeoPoint(req.Longitude, req.Latitude)
	if err != nil {
		return respondBadRequest(ctx, "invalid location: "+err.Error())
	}

	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewCreateRestaurantCommand(
		restaurantID,
		principal.ID(),
		req.Name,
		req.Address,
		req.Phone,
		req.Cuisine,
		req.OpeningHours,
		location,
	)
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant data: "+err.Error())
	}

	if err := s.commands.CreateRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": restaurantID.String()})
}

// GetRestaurants handles GET /api/restaurants.
func (s *Server) GetRestaurants(ctx echo.Context) error {
	query := queries.NewGetAllRestaurantsQuery()

	restaurants, err := s.queries.GetAllRestaurants.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRestaurantResponses(restaurants))
}

// GetNearbyRestaurants handles GET /api/restaurants/nearby.
// Query parameters: longitude, latitude (required), maxDistance in meters
// (optional, defaults inside the query constructor).
func (s *Server) GetNearbyRestaurants(ctx echo.Context) error {
	longitude, err := parseFloatParam(ctx.QueryParam("longitude"))
	if err != nil {
		return respondBadRequest(ctx, "longitude must be a number")
	}
	latitude, err := parseFloatParam(ctx.QueryParam("latitude"))
	if err != nil {
		return respondBadRequest(ctx, "latitude must be a number")
	}

	// Absent or malformed radius falls back to the default.
	maxDistance, err := parseFloatParam(ctx.QueryParam("maxDistance"))
	if err != nil {
		maxDistance = 0
	}

	query, err := queries.NewGetNearbyRestaurantsQuery(longitude, latitude, maxDistance)
	if err != nil {
		return respondError(ctx, err)
	}

	restaurants, err := s.queries.GetNearbyRestaurants.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]NearbyRestaurantResponse, len(restaurants))
	for i, r := range restaurants {
		response[i] = NearbyRestaurantResponse{
			RestaurantResponse: toRestaurantResponse(r.RestaurantResponse),
			DistanceMeters:     r.DistanceMeters,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRestaurant handles GET /api/restaurants/:id.
func (s *Server) GetRestaurant(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	query, err := queries.NewGetRestaurantQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	restaurant, err := s.queries.GetRestaurant.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRestaurantResponse(restaurant))
}

// UpdateRestaurant handles PUT /api/restaurants/:id.
// Empty fields keep their current values. Ownership is checked by the
// command handler against the aggregate.
func (s *Server) UpdateRestaurant(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.ActionRestaurantUpdate)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	var req UpdateRestaurantRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	var location *kernel.GeoPoint
	if req.Longitude != nil || req.Latitude != nil {
		if req.Longitude == nil || req.Latitude == nil {
			return respondBadRequest(ctx, "longitude and latitude must be provided together")
		}
		point, pointErr := kernel.NewGeoPoint(*req.Longitude, *req.Latitude)
		if pointErr != nil {
			return respondBadRequest(ctx, "invalid location: "+pointErr.Error())
		}
		location = &point
	}

	cmd, err := commands.NewUpdateRestaurantCommand(
		id,
		principal.ID(),
		principal.Role(),
		req.Name,
		req.Address,
		req.Phone,
		req.Cuisine,
		req.OpeningHours,
		location,
	)
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant data: "+err.Error())
	}

	if err := s.commands.UpdateRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeleteRestaurant handles DELETE /api/restaurants/:id.
func (s *Server) DeleteRestaurant(ctx echo.Context) error {
	principal, err := s.authorize(ctx, services.ActionRestaurantDelete)
	if err != nil {
		return respondError(ctx, err)
	}

	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	cmd, err := commands.NewDeleteRestaurantCommand(id, principal.ID(), principal.Role())
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.DeleteRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
