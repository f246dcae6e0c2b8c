package commands

import (
	"context"
	"time"

	"dispatch/internal/core/ports"
)

// AcceptAssignmentCommandHandler arbitrates the accept race. The repository's
// conditional update is the only mutation path, so of any number of couriers
// racing on the same offer exactly one wins; everybody else gets a precise
// reason (assignment.ErrAlreadyAssigned, ErrNotEligible, ErrInvalidState).
//
// The winner is propagated onto the shop order's courier cache in the same
// transaction.
type AcceptAssignmentCommandHandler struct {
	uowFactory DispatchUoWFactory
	eventBus   ports.EventBus
}

// NewAcceptAssignmentCommandHandler creates a handler for accept requests.
func NewAcceptAssignmentCommandHandler(
	uowFactory DispatchUoWFactory,
	eventBus ports.EventBus,
) AcceptAssignmentCommandHandler {
	return AcceptAssignmentCommandHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
	}
}

// Handle processes the accept command.
func (h AcceptAssignmentCommandHandler) Handle(ctx context.Context, cmd AcceptAssignmentCommand) error {
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

	assignmentEntity, err := uow.AssignmentRepository().
		Accept(ctx, cmd.AssignmentID(), cmd.CourierID(), time.Now().UTC())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	orderEntity, err := orderRepo.GetByShopOrder(ctx, assignmentEntity.ShopOrderID())
	if err != nil {
		return err
	}

	if err = orderEntity.SetCourier(assignmentEntity.ShopOrderID(), cmd.CourierID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.eventBus.Publish(ctx, "assignments", map[string]any{
		"type":         "accepted",
		"assignmentId": assignmentEntity.ID().String(),
		"courierId":    cmd.CourierID().String(),
	})

	return nil
}
