package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRequestCompletionCommandIsNotConstructed = errors.New(
	"RequestCompletionCommand must be created via NewRequestCompletionCommand constructor",
)

// RequestCompletionCommand represents a courier at the door asking for a
// proof-of-delivery code to be issued to the customer.
type RequestCompletionCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestCompletionCommand creates a completion request command.
func NewRequestCompletionCommand(courierID kernel.UUID) (RequestCompletionCommand, error) {
	command := RequestCompletionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCourierID(courierID); err != nil {
		return RequestCompletionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestCompletionCommand) Validate() error {
	return c.guard.Validate(ErrRequestCompletionCommandIsNotConstructed)
}

// CourierID returns the requesting courier's ID.
func (c RequestCompletionCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *RequestCompletionCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}
