package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDispatchCommandIsNotConstructed = errors.New(
	"DispatchCommand must be created via NewDispatchCommand constructor",
)

// DispatchCommand represents a request to start the courier dispatch cycle
// for a shop order that just went out for delivery.
type DispatchCommand struct { //nolint:recvcheck //using for validation
	shopOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDispatchCommand creates a dispatch command for the given shop order.
func NewDispatchCommand(shopOrderID kernel.UUID) (DispatchCommand, error) {
	command := DispatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setShopOrderID(shopOrderID); err != nil {
		return DispatchCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchCommand) Validate() error {
	return c.guard.Validate(ErrDispatchCommandIsNotConstructed)
}

// ShopOrderID returns the shop order to dispatch.
func (c DispatchCommand) ShopOrderID() kernel.UUID {
	return c.shopOrderID
}

func (c *DispatchCommand) setShopOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.shopOrderID = id
	return nil
}
