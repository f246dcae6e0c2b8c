package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// CandidateSelector discovers the couriers a dispatch cycle is offered to.
// Implemented by the domain service of the same name.
type CandidateSelector interface {
	SelectCandidates(ctx context.Context, destination kernel.GeoPoint) ([]kernel.UUID, error)
}

// DispatchCommandHandler starts the broadcast-and-accept cycle for a shop
// order: it freezes the candidate list into a new assignment, attaches the
// cycle to the shop order in the same transaction, and only then fans the
// offer out.
//
// The assignment is created even when nobody is in range. The offer then sits
// open with an empty candidate list until the merchant cancels; a later
// broadcast would otherwise silently never happen because a shop order
// dispatches at most once.
type DispatchCommandHandler struct {
	uowFactory DispatchUoWFactory
	selector   CandidateSelector
	notifier   ports.Notifier
	eventBus   ports.EventBus
}

// NewDispatchCommandHandler creates a handler for dispatch requests.
func NewDispatchCommandHandler(
	uowFactory DispatchUoWFactory,
	selector CandidateSelector,
	notifier ports.Notifier,
	eventBus ports.EventBus,
) DispatchCommandHandler {
	return DispatchCommandHandler{
		uowFactory: uowFactory,
		selector:   selector,
		notifier:   notifier,
		eventBus:   eventBus,
	}
}

// Handle processes the dispatch command.
// Returns order.ErrNotOutForDelivery for a shop order that has not reached
// out-for-delivery, and order.ErrAlreadyDispatched when a cycle already
// exists, making retries of the surrounding workflow safe.
func (h DispatchCommandHandler) Handle(ctx context.Context, cmd DispatchCommand) error {
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

	orderEntity, err := orderRepo.GetByShopOrder(ctx, cmd.ShopOrderID())
	if err != nil {
		return err
	}

	shopOrder, err := orderEntity.ShopOrderByID(cmd.ShopOrderID())
	if err != nil {
		return err
	}

	candidates, err := h.selector.SelectCandidates(ctx, orderEntity.Destination())
	if err != nil {
		return err
	}

	assignmentEntity, err := assignment.NewAssignment(
		kernel.NewUUID(), orderEntity.ID(), shopOrder.ID(), shopOrder.ShopID(),
		candidates, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = shopOrder.AttachAssignment(assignmentEntity.ID()); err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Add(ctx, assignmentEntity); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	payload := map[string]any{
		"assignmentId": assignmentEntity.ID().String(),
		"shopOrderId":  shopOrder.ID().String(),
		"address":      orderEntity.Address(),
	}
	for _, courierID := range candidates {
		h.notifier.Notify(ctx, courierID, ports.NotificationAssignmentOffer, payload)
	}

	h.eventBus.Publish(ctx, "assignments", map[string]any{
		"type":         "broadcasted",
		"assignmentId": assignmentEntity.ID().String(),
		"candidates":   len(candidates),
	})

	return nil
}
