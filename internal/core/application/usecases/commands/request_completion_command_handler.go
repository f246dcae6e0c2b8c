package commands

import (
	"context"
	"errors"
	"math/rand/v2"
	"strconv"
	"time"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// ErrNoActiveAssignment is returned when a courier requests or confirms
// completion without currently holding a job.
var ErrNoActiveAssignment = errors.New("courier has no active assignment")

// deliveryCodeTTL is the validity window of a proof-of-delivery code.
const deliveryCodeTTL = 10 * time.Minute

// newDeliveryCode mints a fixed-width four digit code, 1000 to 9999.
func newDeliveryCode() string {
	return strconv.Itoa(rand.IntN(9000) + 1000)
}

// RequestCompletionCommandHandler handles the first phase of delivery
// verification: locate the courier's active job, mint a short-lived code on
// the customer record, and send it to the customer out of band. The courier
// never sees the code; the customer reads it to them at the door.
//
// Re-requesting overwrites the previous code, so a courier can always recover
// from an expired window.
type RequestCompletionCommandHandler struct {
	uowFactory CompletionUoWFactory
	notifier   ports.Notifier
}

// NewRequestCompletionCommandHandler creates a handler for completion requests.
func NewRequestCompletionCommandHandler(
	uowFactory CompletionUoWFactory,
	notifier ports.Notifier,
) RequestCompletionCommandHandler {
	return RequestCompletionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the completion request command.
func (h RequestCompletionCommandHandler) Handle(ctx context.Context, cmd RequestCompletionCommand) error {
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
		GetActiveByCourier(ctx, cmd.CourierID(), services.BusyStatuses())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoActiveAssignment
	}
	if err != nil {
		return err
	}

	orderEntity, err := uow.OrderRepository().Get(ctx, assignmentEntity.OrderID())
	if err != nil {
		return err
	}

	customerRepo := uow.CustomerRepository()

	customerEntity, err := customerRepo.Get(ctx, orderEntity.CustomerID())
	if err != nil {
		return err
	}

	code := newDeliveryCode()
	if err = customerEntity.IssueDeliveryCode(code, time.Now().UTC().Add(deliveryCodeTTL)); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, customerEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, customerEntity.ID(), ports.NotificationDeliveryCode, map[string]any{
		"code":        code,
		"shopOrderId": assignmentEntity.ShopOrderID().String(),
	})

	return nil
}
