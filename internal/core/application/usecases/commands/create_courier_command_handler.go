package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/ports"
)

// CreateCourierCommandHandler handles courier registration. Persists the new
// aggregate and seeds the geospatial index with the starting position so the
// courier is discoverable by the very next dispatch.
type CreateCourierCommandHandler struct {
	uowFactory    CourierUoWFactory
	locationIndex ports.LocationIndex
}

// NewCreateCourierCommandHandler creates a handler for courier registration.
func NewCreateCourierCommandHandler(
	uowFactory CourierUoWFactory,
	locationIndex ports.LocationIndex,
) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory:    uowFactory,
		locationIndex: locationIndex,
	}
}

// Handle processes the courier creation command.
// The index upsert happens inside the transaction scope: if the index is
// unreachable the registration rolls back rather than leaving an
// undiscoverable courier.
func (h CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
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

	courierEntity, err := courier.NewCourier(cmd.CourierID(), cmd.Name(), cmd.Email(), cmd.Mobile(), cmd.Location())
	if err != nil {
		return err
	}

	if err = uow.CourierRepository().Add(ctx, courierEntity); err != nil {
		return err
	}

	if err = h.locationIndex.Upsert(ctx, courierEntity.ID(), courierEntity.Location()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
