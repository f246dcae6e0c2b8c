package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrSweepExpiredCodesCommandIsNotConstructed = errors.New(
	"SweepExpiredCodesCommand must be created via NewSweepExpiredCodesCommand constructor",
)

// SweepExpiredCodesCommand triggers a bulk cleanup of delivery codes whose
// validity window has passed. Issued periodically by the code sweep job.
type SweepExpiredCodesCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepExpiredCodesCommand creates a new command to trigger the cleanup.
func NewSweepExpiredCodesCommand() SweepExpiredCodesCommand {
	return SweepExpiredCodesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *SweepExpiredCodesCommand) Validate() error {
	return c.guard.Validate(
		ErrSweepExpiredCodesCommandIsNotConstructed,
	)
}
