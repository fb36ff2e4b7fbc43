package commands

import (
	"context"

	"marketplace/internal/core/domain/model/review"
)

// PopularItemsInvalidator drops the cached popular-items ranking after a
// rating changes. Invalidation failures are non-fatal: the cache entry
// expires on its own.
type PopularItemsInvalidator interface {
	Invalidate(ctx context.Context) error
}

// RecordReviewCommandHandler handles review creation and the rating
// aggregate side effect.
//
// The menu item and originating order must exist. The rating is folded into
// the item's running mean through the repository's atomic arithmetic update,
// then the review row is appended; both happen in one transaction. Duplicate
// reviews against the same order are not rejected.
type RecordReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	popular    PopularItemsInvalidator
}

// NewRecordReviewCommandHandler creates a handler for review recording.
// Requires a ReviewUoWFactory for transactional persistence and an
// invalidator for the popular-items cache.
func NewRecordReviewCommandHandler(
	uowFactory ReviewUoWFactory,
	popular PopularItemsInvalidator,
) RecordReviewCommandHandler {
	return RecordReviewCommandHandler{
		uowFactory: uowFactory,
		popular:    popular,
	}
}

// Handle processes the review command.
// Fails with *errs.ObjectNotFoundError if the menu item or order is absent.
func (h *RecordReviewCommandHandler) Handle(ctx context.Context, cmd RecordReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := uow.MenuItemRepository().ApplyRating(ctx, cmd.MenuItemID(), cmd.Rating()); err != nil {
		return err
	}

	newReview, err := review.NewReview(
		cmd.ReviewID(),
		cmd.UserID(),
		cmd.MenuItemID(),
		cmd.OrderID(),
		cmd.Rating(),
		cmd.Comment(),
	)
	if err != nil {
		return err
	}

	if err = uow.ReviewRepository().Add(ctx, newReview); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Rating changed; the cached ranking is stale. Best effort only.
	_ = h.popular.Invalidate(ctx)

	return nil
}
