package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// ReportLocationCommandHandler handles courier position reports. Updates the
// persisted aggregate and the geospatial index together so candidate
// discovery sees the move as soon as the report lands.
type ReportLocationCommandHandler struct {
	uowFactory    CourierUoWFactory
	locationIndex ports.LocationIndex
}

// NewReportLocationCommandHandler creates a handler for location reports.
func NewReportLocationCommandHandler(
	uowFactory CourierUoWFactory,
	locationIndex ports.LocationIndex,
) ReportLocationCommandHandler {
	return ReportLocationCommandHandler{
		uowFactory:    uowFactory,
		locationIndex: locationIndex,
	}
}

// Handle processes a courier position report.
// A deactivated courier cannot report; the domain rejects the move.
func (h ReportLocationCommandHandler) Handle(ctx context.Context, cmd ReportLocationCommand) error {
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

	courierRepo := uow.CourierRepository()

	courierEntity, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = courierEntity.MoveTo(cmd.Location()); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, courierEntity); err != nil {
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
