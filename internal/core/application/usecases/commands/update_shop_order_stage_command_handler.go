package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// ErrNotShopOrderMerchant is returned when a merchant tries to change a shop
// order operated by somebody else.
var ErrNotShopOrderMerchant = errors.New("shop order belongs to a different merchant")

// UpdateShopOrderStageCommandHandler handles merchant-driven stage changes.
//
// Side effects by target stage:
//   - Preparing notifies the customer that the kitchen started
//   - Cancelled abandons a live dispatch cycle, if one exists
//
// OutForDelivery only moves the stage; the dispatch cycle itself is a
// separate command so a broadcast failure never undoes the stage change.
type UpdateShopOrderStageCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.Notifier
}

// NewUpdateShopOrderStageCommandHandler creates a handler for stage updates.
func NewUpdateShopOrderStageCommandHandler(
	uowFactory DispatchUoWFactory,
	notifier ports.Notifier,
) UpdateShopOrderStageCommandHandler {
	return UpdateShopOrderStageCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the stage update command.
func (h UpdateShopOrderStageCommandHandler) Handle(ctx context.Context, cmd UpdateShopOrderStageCommand) error {
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

	if !shopOrder.MerchantID().IsEqual(cmd.MerchantID()) {
		return ErrNotShopOrderMerchant
	}

	if err = shopOrder.ChangeStage(cmd.Stage()); err != nil {
		return err
	}

	if cmd.Stage() == order.StageCancelled {
		if err = h.abandonDispatch(ctx, uow, shopOrder); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if cmd.Stage() == order.StagePreparing {
		h.notifier.Notify(ctx, orderEntity.CustomerID(), ports.NotificationOrderStatus, map[string]any{
			"shopOrderId": shopOrder.ID().String(),
			"stage":       order.StagePreparing.String(),
		})
	}

	return nil
}

// abandonDispatch cancels the live dispatch cycle of a cancelled shop order,
// if one was ever started, and drops the courier cache.
func (h UpdateShopOrderStageCommandHandler) abandonDispatch(
	ctx context.Context,
	uow DispatchUoW,
	shopOrder *order.ShopOrder,
) error {
	assignmentID := shopOrder.AssignmentID()
	if assignmentID == nil {
		return nil
	}

	if err := uow.AssignmentRepository().Cancel(ctx, *assignmentID); err != nil {
		return err
	}

	shopOrder.ClearCourier()
	return nil
}
