package http

import (
	"strconv"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
)

func parseFloatParam(raw string) (float64, error) {
	return strconv.ParseFloat(raw, 64)
}

// Request bodies. Identifiers travel as canonical UUID strings; optional
// fields use pointers so "absent" and "zero" stay distinguishable.

type CreateRestaurantRequest struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Cuisine      []string `json:"cuisine"`
	OpeningHours string   `json:"opening_hours"`
	Longitude    float64  `json:"longitude"`
	Latitude     float64  `json:"latitude"`
}

type UpdateRestaurantRequest struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Cuisine      []string `json:"cuisine"`
	OpeningHours string   `json:"opening_hours"`
	Longitude    *float64 `json:"longitude"`
	Latitude     *float64 `json:"latitude"`
}

type CreateMenuItemRequest struct {
	RestaurantID string  `json:"restaurant_id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
}

type UpdateMenuItemRequest struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	IsAvailable *bool    `json:"is_available"`
}

type CreateOrderRequest struct {
	RestaurantID    string             `json:"restaurant_id"`
	Items           []OrderItemRequest `json:"items"`
	DeliveryAddress string             `json:"delivery_address"`
}

type OrderItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type CreateReviewRequest struct {
	MenuItemID string `json:"menu_item_id"`
	OrderID    string `json:"order_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Response bodies.

type RestaurantResponse struct {
	ID           string   `json:"id"`
	OwnerID      string   `json:"owner_id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Cuisine      []string `json:"cuisine"`
	OpeningHours string   `json:"opening_hours"`
	Rating       float64  `json:"rating"`
	Longitude    float64  `json:"longitude"`
	Latitude     float64  `json:"latitude"`
}

type NearbyRestaurantResponse struct {
	RestaurantResponse
	DistanceMeters float64 `json:"distance_meters"`
}

type MenuItemResponse struct {
	ID              string  `json:"id"`
	RestaurantID    string  `json:"restaurant_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	IsAvailable     bool    `json:"is_available"`
	AverageRating   float64 `json:"average_rating"`
	NumberOfRatings int     `json:"number_of_ratings"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	CustomerID      string              `json:"customer_id"`
	RestaurantID    string              `json:"restaurant_id"`
	TotalAmount     float64             `json:"total_amount"`
	Status          string              `json:"status"`
	PaymentStatus   string              `json:"payment_status"`
	DriverID        *string             `json:"driver_id,omitempty"`
	DeliveryAddress string              `json:"delivery_address"`
	Items           []OrderItemResponse `json:"items,omitempty"`
}

type OrderItemResponse struct {
	MenuItemID string  `json:"menu_item_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

type ReviewResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	MenuItemID string    `json:"menu_item_id"`
	OrderID    string    `json:"order_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

type ProfileResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Address   string   `json:"address"`
	Role      string   `json:"role"`
	Favorites []string `json:"favorites"`
}

func toRestaurantResponse(r queries.RestaurantResponse) RestaurantResponse {
	return RestaurantResponse{
		ID:           r.ID.String(),
		OwnerID:      r.OwnerID.String(),
		Name:         r.Name,
		Address:      r.Address,
		Phone:        r.Phone,
		Cuisine:      r.Cuisine,
		OpeningHours: r.OpeningHours,
		Rating:       r.Rating,
		Longitude:    r.Longitude,
		Latitude:     r.Latitude,
	}
}

func toRestaurantResponses(rs []queries.RestaurantResponse) []RestaurantResponse {
	out := make([]RestaurantResponse, len(rs))
	for i, r := range rs {
		out[i] = toRestaurantResponse(r)
	}
	return out
}

func toMenuItemResponse(m queries.MenuItemResponse) MenuItemResponse {
	return MenuItemResponse{
		ID:              m.ID.String(),
		RestaurantID:    m.RestaurantID.String(),
		Name:            m.Name,
		Description:     m.Description,
		Price:           m.Price,
		Category:        m.Category,
		IsAvailable:     m.IsAvailable,
		AverageRating:   m.AverageRating,
		NumberOfRatings: m.NumberOfRatings,
	}
}

func toMenuItemResponses(ms []queries.MenuItemResponse) []MenuItemResponse {
	out := make([]MenuItemResponse, len(ms))
	for i, m := range ms {
		out[i] = toMenuItemResponse(m)
	}
	return out
}

func toOrderResponse(o queries.OrderResponse) OrderResponse {
	var driverID *string
	if o.DriverID != nil {
		s := o.DriverID.String()
		driverID = &s
	}

	return OrderResponse{
		ID:              o.ID.String(),
		CustomerID:      o.CustomerID.String(),
		RestaurantID:    o.RestaurantID.String(),
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		PaymentStatus:   o.PaymentStatus,
		DriverID:        driverID,
		DeliveryAddress: o.DeliveryAddress,
	}
}

func toOrderResponses(os []queries.OrderResponse) []OrderResponse {
	out := make([]OrderResponse, len(os))
	for i, o := range os {
		out[i] = toOrderResponse(o)
	}
	return out
}

func toUUIDStrings(ids []kernel.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
