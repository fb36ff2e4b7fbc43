package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// refreshRestaurantRatingsSQL recomputes each restaurant's rating as the
// rating-count-weighted mean of its menu items. Restaurants whose items have
// no ratings yet keep their current value.
const refreshRestaurantRatingsSQL = `
UPDATE restaurants SET rating = sub.weighted_rating
FROM (
	SELECT restaurant_id,
	       SUM(average_rating * number_of_ratings) / SUM(number_of_ratings) AS weighted_rating
	FROM menu_items
	WHERE number_of_ratings > 0
	GROUP BY restaurant_id
) sub
WHERE restaurants.id = sub.restaurant_id`

// RestaurantRatingJob periodically rolls menu item ratings up into the
// per-restaurant rating shown in listings.
type RestaurantRatingJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewRestaurantRatingJob creates a new job for refreshing restaurant ratings.
// The rollup runs as a single SQL statement once per minute.
func NewRestaurantRatingJob(db *gorm.DB, logger *slog.Logger) *RestaurantRatingJob {
	return &RestaurantRatingJob{
		db:     db,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "restaurant_rating_job"),
	}
}

// Start begins the rating refresh job to run every minute.
func (j *RestaurantRatingJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		if err := j.db.WithContext(ctx).Exec(refreshRestaurantRatingsSQL).Error; err != nil {
			j.logger.ErrorContext(ctx, "Restaurant rating refresh failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Restaurant rating job started (running every minute)")
	return nil
}

// Stop stops the rating refresh job.
func (j *RestaurantRatingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Restaurant rating job stopped")
}
