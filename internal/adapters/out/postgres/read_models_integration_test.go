package postgres_test

import (
	"context"
	"fmt"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// stubPopularCache always misses, forcing the DB fallback path.
type stubPopularCache struct {
	stored []queries.MenuItemResponse
}

func (s *stubPopularCache) Get(_ context.Context) ([]queries.MenuItemResponse, bool, error) {
	return nil, false, nil
}

func (s *stubPopularCache) Set(_ context.Context, items []queries.MenuItemResponse) error {
	s.stored = items
	return nil
}

func (suite *UnitOfWorkIntegrationTestSuite) seedRestaurantAt(name string, longitude, latitude float64) kernel.UUID {
	location, err := kernel.NewGeoPoint(longitude, latitude)
	suite.Require().NoError(err)

	aggregate := suite.newRestaurant(kernel.NewUUID())
	suite.Require().NoError(aggregate.SetName(name))
	suite.Require().NoError(aggregate.SetLocation(location))
	suite.Require().NoError(suite.factory.Create().RestaurantRepository().Add(context.Background(), aggregate))
	return aggregate.ID()
}

func (suite *UnitOfWorkIntegrationTestSuite) TestNearbyRestaurants_OrderedByDistance() {
	ctx := context.Background()

	// Roughly 0m, ~1.1km and ~11km north of the search point.
	nearID := suite.seedRestaurantAt("near", -73.9857, 40.7484)
	midID := suite.seedRestaurantAt("mid", -73.9857, 40.7584)
	suite.seedRestaurantAt("far", -73.9857, 40.8484)

	query, err := queries.NewGetNearbyRestaurantsQuery(-73.9857, 40.7484, 5000)
	suite.Require().NoError(err)

	handler := queries.NewGetNearbyRestaurantsQueryHandler(suite.db)
	results, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(results, 2, "the far restaurant is outside the radius")
	suite.True(results[0].ID.IsEqual(nearID))
	suite.True(results[1].ID.IsEqual(midID))
	suite.Less(results[0].DistanceMeters, results[1].DistanceMeters)
	suite.InDelta(0.0, results[0].DistanceMeters, 1.0)
	suite.InDelta(1112.0, results[1].DistanceMeters, 50.0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPopularMenuItems_DBFallback() {
	ctx := context.Background()
	restaurantID := kernel.NewUUID()
	repo := suite.factory.Create().MenuItemRepository()

	// Twelve rated items plus one unavailable top-rated item. The ranking
	// must hold ten entries, best first, and skip the unavailable one.
	for i := 0; i < 12; i++ {
		item, err := menu.NewMenuItem(
			kernel.NewUUID(), restaurantID, fmt.Sprintf("dish-%02d", i), 9.0, "mains", "")
		suite.Require().NoError(err)
		suite.Require().NoError(repo.Add(ctx, item))
		suite.Require().NoError(repo.ApplyRating(ctx, item.ID(), 1+i%5))
	}

	hidden := suite.newMenuItem(restaurantID)
	hidden.SetAvailability(false)
	suite.Require().NoError(repo.Add(ctx, hidden))
	suite.Require().NoError(repo.ApplyRating(ctx, hidden.ID(), 5))

	cache := &stubPopularCache{}
	handler := queries.NewGetPopularMenuItemsQueryHandler(suite.db, cache)
	items, err := handler.Handle(ctx, queries.NewGetPopularMenuItemsQuery())
	suite.Require().NoError(err)

	suite.Require().Len(items, queries.PopularMenuItemsLimit)
	for i := 1; i < len(items); i++ {
		suite.GreaterOrEqual(items[i-1].AverageRating, items[i].AverageRating)
	}
	for _, item := range items {
		suite.False(item.ID.IsEqual(hidden.ID()), "unavailable items must not rank")
	}

	suite.Len(cache.stored, queries.PopularMenuItemsLimit, "fallback result should be written back to the cache")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRestaurantOrders_ScopedToOwnerAndManager() {
	ctx := context.Background()
	ownerID := kernel.NewUUID()
	managerID := kernel.NewUUID()

	owned := suite.newRestaurant(ownerID)
	suite.Require().NoError(owned.AddManager(managerID))
	other := suite.newRestaurant(kernel.NewUUID())

	repo := suite.factory.Create()
	suite.Require().NoError(repo.RestaurantRepository().Add(ctx, owned))
	suite.Require().NoError(repo.RestaurantRepository().Add(ctx, other))

	item := suite.newMenuItem(owned.ID())
	lineItem, err := order.NewLineItem(item.ID(), 1, item.Price())
	suite.Require().NoError(err)

	ownedOrder := suite.newOrder(owned.ID(), []order.LineItem{lineItem})
	otherOrder := suite.newOrder(other.ID(), []order.LineItem{lineItem})
	suite.Require().NoError(repo.OrderRepository().Add(ctx, ownedOrder))
	suite.Require().NoError(repo.OrderRepository().Add(ctx, otherOrder))

	handler := queries.NewGetRestaurantOrdersQueryHandler(suite.db)

	for _, actorID := range []kernel.UUID{ownerID, managerID} {
		query, queryErr := queries.NewGetRestaurantOrdersQuery(actorID)
		suite.Require().NoError(queryErr)

		orders, handleErr := handler.Handle(ctx, query)
		suite.Require().NoError(handleErr)
		suite.Require().Len(orders, 1)
		suite.True(orders[0].ID.IsEqual(ownedOrder.ID()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGetOrder_WithItems() {
	ctx := context.Background()
	item := suite.newMenuItem(kernel.NewUUID())
	lineItem, err := order.NewLineItem(item.ID(), 3, item.Price())
	suite.Require().NoError(err)
	orderAggregate := suite.newOrder(kernel.NewUUID(), []order.LineItem{lineItem})

	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, orderAggregate))

	handler := queries.NewGetOrderQueryHandler(suite.db)
	query, err := queries.NewGetOrderQuery(orderAggregate.ID())
	suite.Require().NoError(err)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("placed", result.Status)
	suite.Require().Len(result.Items, 1)
	suite.Equal(3, result.Items[0].Quantity)

	missing, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
