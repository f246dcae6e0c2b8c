package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportLocationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()

	courierEntity, err := courier.NewCourier(
		courierID, "Ravi", "ravi@example.com", "+91900000001", testGeoPoint(t))
	require.NoError(t, err)

	newLocation, err := kernel.NewGeoPoint(12.95, 77.64)
	require.NoError(t, err)

	cmd, err := commands.NewReportLocationCommand(courierID, newLocation)
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	locationIndex := new(MockLocationIndex)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, courierID).Return(courierEntity, nil).Once(),
		courierRepo.On("Update", ctx, courierEntity).Return(nil).Once(),
		locationIndex.On("Upsert", ctx, courierID, newLocation).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReportLocationCommandHandler(factory, locationIndex)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, newLocation, courierEntity.Location())
	uow.AssertExpectations(t)
	locationIndex.AssertExpectations(t)
}

func TestReportLocationCommandHandler_Handle_DeactivatedCourierCannotReport(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()

	courierEntity, err := courier.NewCourier(
		courierID, "Ravi", "ravi@example.com", "+91900000001", testGeoPoint(t))
	require.NoError(t, err)
	courierEntity.Deactivate()

	cmd, err := commands.NewReportLocationCommand(courierID, testGeoPoint(t))
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	locationIndex := new(MockLocationIndex)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Get", ctx, courierID).Return(courierEntity, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReportLocationCommandHandler(factory, locationIndex)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, courier.ErrCourierIsDeactivated)
	courierRepo.AssertNotCalled(t, "Update")
	locationIndex.AssertNotCalled(t, "Upsert")
}

func TestReportLocationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockCourierUoWFactory)

	handler := commands.NewReportLocationCommandHandler(factory, new(MockLocationIndex))
	err := handler.Handle(ctx, commands.ReportLocationCommand{})

	require.ErrorIs(t, err, commands.ErrReportLocationCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
