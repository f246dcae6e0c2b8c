package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrConfirmCompletionCommandIsNotConstructed = errors.New(
		"ConfirmCompletionCommand must be created via NewConfirmCompletionCommand constructor",
	)
	ErrCodeIsRequired = errors.New("code is required")
)

// ConfirmCompletionCommand represents a courier submitting the customer's
// proof-of-delivery code.
type ConfirmCompletionCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	code      string

	guard guard.ConstructorGuard
}

// NewConfirmCompletionCommand creates a completion confirmation command.
func NewConfirmCompletionCommand(courierID kernel.UUID, code string) (ConfirmCompletionCommand, error) {
	command := ConfirmCompletionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setCode(code),
	); err != nil {
		return ConfirmCompletionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmCompletionCommand) Validate() error {
	return c.guard.Validate(ErrConfirmCompletionCommandIsNotConstructed)
}

// CourierID returns the confirming courier's ID.
func (c ConfirmCompletionCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Code returns the submitted proof-of-delivery code.
func (c ConfirmCompletionCommand) Code() string {
	return c.code
}

func (c *ConfirmCompletionCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *ConfirmCompletionCommand) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}

	c.code = code
	return nil
}
