package cmd

import (
	"strconv"
	"time"

	"marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/rediscache"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cache      *rediscache.PopularItemsCache
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	ttlSeconds, err := strconv.Atoi(config.PopularCacheTTLSeconds)
	if err != nil {
		ttlSeconds = 0
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:      rediscache.NewPopularItemsCache(redisClient, time.Duration(ttlSeconds)*time.Second),
	}
}

// CreateServer wires the full HTTP surface over the command and query handlers.
func (c *CompositionRoot) CreateServer() *http.Server {
	cmds := http.Commands{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		RecordReview:      c.CreateRecordReviewCommandHandler(),
		CreateRestaurant:  c.CreateCreateRestaurantCommandHandler(),
		UpdateRestaurant:  c.CreateUpdateRestaurantCommandHandler(),
		DeleteRestaurant:  c.CreateDeleteRestaurantCommandHandler(),
		CreateMenuItem:    c.CreateCreateMenuItemCommandHandler(),
		UpdateMenuItem:    c.CreateUpdateMenuItemCommandHandler(),
		DeleteMenuItem:    c.CreateDeleteMenuItemCommandHandler(),
		UpdateProfile:     c.CreateUpdateProfileCommandHandler(),
		AddFavorite:       c.CreateAddFavoriteCommandHandler(),
		RemoveFavorite:    c.CreateRemoveFavoriteCommandHandler(),
	}

	qrys := http.Queries{
		GetAllRestaurants:    queries.NewGetAllRestaurantsQueryHandler(c.gormDB),
		GetNearbyRestaurants: queries.NewGetNearbyRestaurantsQueryHandler(c.gormDB),
		GetRestaurant:        queries.NewGetRestaurantQueryHandler(c.gormDB),
		GetRestaurantMenu:    queries.NewGetRestaurantMenuQueryHandler(c.gormDB),
		GetPopularMenuItems:  queries.NewGetPopularMenuItemsQueryHandler(c.gormDB, c.cache),
		GetMenuItem:          queries.NewGetMenuItemQueryHandler(c.gormDB),
		GetCustomerOrders:    queries.NewGetCustomerOrdersQueryHandler(c.gormDB),
		GetRestaurantOrders:  queries.NewGetRestaurantOrdersQueryHandler(c.gormDB),
		GetDriverOrders:      queries.NewGetDriverOrdersQueryHandler(c.gormDB),
		GetOrder:             queries.NewGetOrderQueryHandler(c.gormDB),
		GetMenuItemReviews:   queries.NewGetMenuItemReviewsQueryHandler(c.gormDB),
		GetProfile:           queries.NewGetProfileQueryHandler(c.gormDB),
	}

	return http.NewServer(cmds, qrys, services.NewAccessPolicy())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordReviewCommandHandler() commands.RecordReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordReviewCommandHandler(f, c.cache)
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateRestaurantCommandHandler() commands.UpdateRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteRestaurantCommandHandler() commands.DeleteRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateAddFavoriteCommandHandler() commands.AddFavoriteCommandHandler {
	var f commands.FavoritesUoWFactory = FuncFavoritesUoWFactory(func() commands.FavoritesUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddFavoriteCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveFavoriteCommandHandler() commands.RemoveFavoriteCommandHandler {
	var f commands.FavoritesUoWFactory = FuncFavoritesUoWFactory(func() commands.FavoritesUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveFavoriteCommandHandler(f)
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncFavoritesUoWFactory func() commands.FavoritesUoW

func (f FuncFavoritesUoWFactory) Create() commands.FavoritesUoW {
	return f()
}
