// Package http exposes the marketplace over a REST API built on echo.
//
// Authentication is terminated upstream: a gateway injects the verified
// principal as X-User-Id and X-User-Role headers. This package parses the
// principal, runs the role table via services.AccessPolicy, and maps domain
// errors to HTTP status codes in one place.
package http

import (
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Commands groups the command handlers the server dispatches to.
type Commands struct {
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	RecordReview      commands.RecordReviewCommandHandler
	CreateRestaurant  commands.CreateRestaurantCommandHandler
	UpdateRestaurant  commands.UpdateRestaurantCommandHandler
	DeleteRestaurant  commands.DeleteRestaurantCommandHandler
	CreateMenuItem    commands.CreateMenuItemCommandHandler
	UpdateMenuItem    commands.UpdateMenuItemCommandHandler
	DeleteMenuItem    commands.DeleteMenuItemCommandHandler
	UpdateProfile     commands.UpdateProfileCommandHandler
	AddFavorite       commands.AddFavoriteCommandHandler
	RemoveFavorite    commands.RemoveFavoriteCommandHandler
}

// Queries groups the query handlers the server dispatches to.
type Queries struct {
	GetAllRestaurants    queries.GetAllRestaurantsQueryHandler
	GetNearbyRestaurants queries.GetNearbyRestaurantsQueryHandler
	GetRestaurant        queries.GetRestaurantQueryHandler
	GetRestaurantMenu    queries.GetRestaurantMenuQueryHandler
	GetPopularMenuItems  queries.GetPopularMenuItemsQueryHandler
	GetMenuItem          queries.GetMenuItemQueryHandler
	GetCustomerOrders    queries.GetCustomerOrdersQueryHandler
	GetRestaurantOrders  queries.GetRestaurantOrdersQueryHandler
	GetDriverOrders      queries.GetDriverOrdersQueryHandler
	GetOrder             queries.GetOrderQueryHandler
	GetMenuItemReviews   queries.GetMenuItemReviewsQueryHandler
	GetProfile           queries.GetProfileQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
	policy   services.AccessPolicy
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(cmds Commands, qrys Queries, policy services.AccessPolicy) *Server {
	return &Server{
		commands: cmds,
		queries:  qrys,
		policy:   policy,
	}
}

// RegisterRoutes binds the API route table to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	restaurants := api.Group("/restaurants")
	restaurants.POST("", s.CreateRestaurant)
	restaurants.GET("", s.GetRestaurants)
	restaurants.GET("/nearby", s.GetNearbyRestaurants)
	restaurants.GET("/:id", s.GetRestaurant)
	restaurants.PUT("/:id", s.UpdateRestaurant)
	restaurants.DELETE("/:id", s.DeleteRestaurant)

	menus := api.Group("/menus")
	menus.POST("", s.CreateMenuItem)
	menus.GET("/restaurant/:restaurantId", s.GetRestaurantMenu)
	menus.GET("/popular", s.GetPopularMenuItems)
	menus.GET("/:id", s.GetMenuItem)
	menus.PUT("/:id", s.UpdateMenuItem)
	menus.DELETE("/:id", s.DeleteMenuItem)

	orders := api.Group("/orders")
	orders.POST("", s.CreateOrder)
	orders.GET("/customer", s.GetCustomerOrders)
	orders.GET("/restaurant", s.GetRestaurantOrders)
	orders.GET("/driver", s.GetDriverOrders)
	orders.GET("/:id", s.GetOrder)
	orders.PUT("/:id/status", s.UpdateOrderStatus)

	reviews := api.Group("/reviews")
	reviews.POST("", s.CreateReview)
	reviews.GET("/menuItem/:menuItemId", s.GetMenuItemReviews)

	users := api.Group("/users")
	users.GET("/profile", s.GetProfile)
	users.PUT("/profile", s.UpdateProfile)
	users.GET("/favorites", s.GetFavorites)
	users.POST("/favorites/:menuItemId", s.AddFavorite)
	users.DELETE("/favorites/:menuItemId", s.RemoveFavorite)
}
