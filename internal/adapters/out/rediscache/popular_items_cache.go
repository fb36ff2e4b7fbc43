// Package rediscache provides Redis-backed caching for hot read paths.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const popularItemsKey = "popular_menu_items"

// DefaultTTL bounds staleness when invalidation is missed, e.g. a review
// committed while Redis was unreachable.
const DefaultTTL = 5 * time.Minute

// cachedMenuItem is the wire form of a popular item. IDs are stored as
// strings so entries stay readable in redis-cli.
type cachedMenuItem struct {
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

// PopularItemsCache is a Redis read-through cache for the popular-items
// ranking. It also serves as the invalidator the review command handler
// calls after a rating lands.
type PopularItemsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPopularItemsCache creates a cache backed by the given Redis client.
// Non-positive ttl falls back to DefaultTTL.
func NewPopularItemsCache(client *redis.Client, ttl time.Duration) *PopularItemsCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PopularItemsCache{client: client, ttl: ttl}
}

// Get returns the cached ranking. A missing key reports found=false with no
// error; a corrupt entry is dropped and reported as a miss.
func (c *PopularItemsCache) Get(ctx context.Context) ([]queries.MenuItemResponse, bool, error) {
	payload, err := c.client.Get(ctx, popularItemsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var cached []cachedMenuItem
	if err := json.Unmarshal(payload, &cached); err != nil {
		_ = c.client.Del(ctx, popularItemsKey).Err()
		return nil, false, nil
	}

	items := make([]queries.MenuItemResponse, 0, len(cached))
	for _, entry := range cached {
		item, convErr := toResponse(entry)
		if convErr != nil {
			_ = c.client.Del(ctx, popularItemsKey).Err()
			return nil, false, nil
		}
		items = append(items, item)
	}

	return items, true, nil
}

// Set stores the ranking with a bounded TTL.
func (c *PopularItemsCache) Set(ctx context.Context, items []queries.MenuItemResponse) error {
	cached := make([]cachedMenuItem, 0, len(items))
	for _, item := range items {
		cached = append(cached, fromResponse(item))
	}

	payload, err := json.Marshal(cached)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, popularItemsKey, payload, c.ttl).Err()
}

// Invalidate drops the cached ranking so the next read recomputes it.
func (c *PopularItemsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, popularItemsKey).Err()
}

func fromResponse(item queries.MenuItemResponse) cachedMenuItem {
	return cachedMenuItem{
		ID:              item.ID.String(),
		RestaurantID:    item.RestaurantID.String(),
		Name:            item.Name,
		Description:     item.Description,
		Price:           item.Price,
		Category:        item.Category,
		IsAvailable:     item.IsAvailable,
		AverageRating:   item.AverageRating,
		NumberOfRatings: item.NumberOfRatings,
	}
}

func toResponse(entry cachedMenuItem) (queries.MenuItemResponse, error) {
	id, err := kernel.UUIDFromString(entry.ID)
	if err != nil {
		return queries.MenuItemResponse{}, err
	}

	restaurantID, err := kernel.UUIDFromString(entry.RestaurantID)
	if err != nil {
		return queries.MenuItemResponse{}, err
	}

	return queries.MenuItemResponse{
		ID:              id,
		RestaurantID:    restaurantID,
		Name:            entry.Name,
		Description:     entry.Description,
		Price:           entry.Price,
		Category:        entry.Category,
		IsAvailable:     entry.IsAvailable,
		AverageRating:   entry.AverageRating,
		NumberOfRatings: entry.NumberOfRatings,
	}, nil
}
