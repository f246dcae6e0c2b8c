package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// ConfirmCompletionCommandHandler handles the second phase of delivery
// verification. On a matching, unexpired code it closes the assignment
// through the repository's conditional update, marks the shop order
// Delivered, and consumes the code, all in one transaction.
//
// A wrong or expired code rolls back with the code left intact, so the
// courier can retry or re-request within the window.
type ConfirmCompletionCommandHandler struct {
	uowFactory CompletionUoWFactory
	notifier   ports.Notifier
	eventBus   ports.EventBus
}

// NewConfirmCompletionCommandHandler creates a handler for completion
// confirmations.
func NewConfirmCompletionCommandHandler(
	uowFactory CompletionUoWFactory,
	notifier ports.Notifier,
	eventBus ports.EventBus,
) ConfirmCompletionCommandHandler {
	return ConfirmCompletionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		eventBus:   eventBus,
	}
}

// Handle processes the completion confirmation command.
func (h ConfirmCompletionCommandHandler) Handle(ctx context.Context, cmd ConfirmCompletionCommand) error {
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

	now := time.Now().UTC()

	assignmentEntity, err := uow.AssignmentRepository().
		GetActiveByCourier(ctx, cmd.CourierID(), services.BusyStatuses())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoActiveAssignment
	}
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	orderEntity, err := orderRepo.Get(ctx, assignmentEntity.OrderID())
	if err != nil {
		return err
	}

	customerRepo := uow.CustomerRepository()

	customerEntity, err := customerRepo.Get(ctx, orderEntity.CustomerID())
	if err != nil {
		return err
	}

	if err = customerEntity.VerifyDeliveryCode(cmd.Code(), now); err != nil {
		return err
	}

	if _, err = uow.AssignmentRepository().Complete(ctx, assignmentEntity.ID(), now); err != nil {
		return err
	}

	if err = orderEntity.MarkDelivered(assignmentEntity.ShopOrderID()); err != nil {
		return err
	}

	customerEntity.ClearDeliveryCode()

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, customerEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, customerEntity.ID(), ports.NotificationDeliveryComplete, map[string]any{
		"shopOrderId": assignmentEntity.ShopOrderID().String(),
	})

	h.eventBus.Publish(ctx, "assignments", map[string]any{
		"type":         "completed",
		"assignmentId": assignmentEntity.ID().String(),
		"courierId":    cmd.CourierID().String(),
	})

	return nil
}
