package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
)

// UpdateOrderStatusCommandHandler handles order status transitions.
//
// The transition is validated against the status graph on the loaded aggregate
// and then persisted as a conditional update keyed on the status the aggregate
// was read with, so two concurrent transitions cannot both succeed from the
// same stale read.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
//
// Fails with *errs.ObjectNotFoundError if the order does not exist and with
// *errs.InvalidStatusTransitionError if the requested move is not one forward
// step (or a cancellation from a non-terminal status), or if the stored status
// changed between the read and the conditional write.
//
// When a delivery driver moves the order to out_for_delivery, that driver is
// recorded on the order in the same update.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	current := aggregate.Status()
	if err = aggregate.TransitionTo(cmd.Next()); err != nil {
		return err
	}

	var driverID *kernel.UUID
	if cmd.ActorRole() == user.RoleDeliveryDriver && cmd.Next() == order.OutForDelivery {
		actorID := cmd.ActorID()
		driverID = &actorID
	}

	if err = orderRepo.UpdateStatus(ctx, cmd.OrderID(), current, cmd.Next(), driverID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
