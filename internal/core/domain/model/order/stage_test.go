package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_Validate(t *testing.T) {
	tests := map[string]struct {
		stage   order.Stage
		wantErr bool
	}{
		"pending is valid":          {order.StagePending, false},
		"preparing is valid":        {order.StagePreparing, false},
		"out for delivery is valid": {order.StageOutForDelivery, false},
		"delivered is valid":        {order.StageDelivered, false},
		"cancelled is valid":        {order.StageCancelled, false},
		"unknown is invalid":        {order.StageUnknown, true},
		"out of range is invalid":   {order.Stage(42), true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := tc.stage.Validate()

			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStage_TransitionTo(t *testing.T) {
	allowed := []struct {
		from, to order.Stage
	}{
		{order.StagePending, order.StagePreparing},
		{order.StagePending, order.StageCancelled},
		{order.StagePreparing, order.StageOutForDelivery},
		{order.StagePreparing, order.StageCancelled},
		{order.StageOutForDelivery, order.StageDelivered},
		{order.StageOutForDelivery, order.StageCancelled},
	}

	for _, tc := range allowed {
		t.Run(tc.from.String()+" to "+tc.to.String(), func(t *testing.T) {
			next, err := tc.from.TransitionTo(tc.to)

			require.NoError(t, err)
			assert.Equal(t, tc.to, next)
		})
	}

	forbidden := []struct {
		from, to order.Stage
	}{
		{order.StagePending, order.StageOutForDelivery},
		{order.StagePending, order.StageDelivered},
		{order.StagePreparing, order.StageDelivered},
		{order.StageOutForDelivery, order.StagePreparing},
		{order.StageDelivered, order.StageCancelled},
		{order.StageCancelled, order.StagePending},
	}

	for _, tc := range forbidden {
		t.Run(tc.from.String()+" to "+tc.to.String()+" is rejected", func(t *testing.T) {
			_, err := tc.from.TransitionTo(tc.to)

			require.Error(t, err)
			assert.ErrorIs(t, err, order.ErrInvalidStageTransition)
		})
	}

	t.Run("transition to unknown is rejected", func(t *testing.T) {
		_, err := order.StagePending.TransitionTo(order.StageUnknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStage_IsTerminal(t *testing.T) {
	assert.True(t, order.StageDelivered.IsTerminal())
	assert.True(t, order.StageCancelled.IsTerminal())
	assert.False(t, order.StagePending.IsTerminal())
	assert.False(t, order.StagePreparing.IsTerminal())
	assert.False(t, order.StageOutForDelivery.IsTerminal())
}

func TestStageFromString(t *testing.T) {
	t.Run("parses every valid stage", func(t *testing.T) {
		for _, name := range []string{"Pending", "Preparing", "OutForDelivery", "Delivered", "Cancelled"} {
			stage, err := order.StageFromString(name)

			require.NoError(t, err)
			assert.Equal(t, name, stage.String())
		}
	})

	t.Run("rejects unknown name", func(t *testing.T) {
		_, err := order.StageFromString("Shipped")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
