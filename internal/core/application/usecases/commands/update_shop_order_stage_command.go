package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateShopOrderStageCommandIsNotConstructed = errors.New(
	"UpdateShopOrderStageCommand must be created via NewUpdateShopOrderStageCommand constructor",
)

// UpdateShopOrderStageCommand represents a merchant moving a shop order
// through its fulfillment stages.
type UpdateShopOrderStageCommand struct { //nolint:recvcheck //using for validation
	shopOrderID kernel.UUID
	merchantID  kernel.UUID
	stage       order.Stage

	guard guard.ConstructorGuard
}

// NewUpdateShopOrderStageCommand creates a stage update command on behalf of
// the given merchant.
func NewUpdateShopOrderStageCommand(
	shopOrderID, merchantID kernel.UUID,
	stage order.Stage,
) (UpdateShopOrderStageCommand, error) {
	command := UpdateShopOrderStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShopOrderID(shopOrderID),
		command.setMerchantID(merchantID),
		command.setStage(stage),
	); err != nil {
		return UpdateShopOrderStageCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShopOrderStageCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShopOrderStageCommandIsNotConstructed)
}

// ShopOrderID returns the targeted shop order's ID.
func (c UpdateShopOrderStageCommand) ShopOrderID() kernel.UUID {
	return c.shopOrderID
}

// MerchantID returns the acting merchant's ID.
func (c UpdateShopOrderStageCommand) MerchantID() kernel.UUID {
	return c.merchantID
}

// Stage returns the requested target stage.
func (c UpdateShopOrderStageCommand) Stage() order.Stage {
	return c.stage
}

func (c *UpdateShopOrderStageCommand) setShopOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shopOrderID = id
	return nil
}

func (c *UpdateShopOrderStageCommand) setMerchantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.merchantID = id
	return nil
}

func (c *UpdateShopOrderStageCommand) setStage(stage order.Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	c.stage = stage
	return nil
}
