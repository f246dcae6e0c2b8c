package commands

import (
	"context"
	"time"
)

// SweepExpiredCodesCommandHandler clears expired delivery codes in bulk.
// An expired code would be rejected at verification anyway; the sweep keeps
// the stored set small and makes the expiry visible in storage.
type SweepExpiredCodesCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewSweepExpiredCodesCommandHandler creates a handler for the periodic
// delivery code cleanup.
func NewSweepExpiredCodesCommandHandler(uowFactory CustomerUoWFactory) SweepExpiredCodesCommandHandler {
	return SweepExpiredCodesCommandHandler{uowFactory: uowFactory}
}

// Handle executes the cleanup and returns how many codes were cleared.
func (h SweepExpiredCodesCommandHandler) Handle(ctx context.Context, cmd SweepExpiredCodesCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cleared, err := uow.CustomerRepository().ClearExpiredDeliveryCodes(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cleared, nil
}
