package http

import (
	"fmt"
	"net/http"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor_MapsWorkflowErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{assignment.ErrAlreadyAssigned, http.StatusConflict},
		{order.ErrAlreadyDispatched, http.StatusConflict},
		{order.ErrNotOutForDelivery, http.StatusConflict},
		{assignment.ErrInvalidState, http.StatusConflict},
		{order.ErrInvalidStageTransition, http.StatusConflict},
		{assignment.ErrNotEligible, http.StatusForbidden},
		{commands.ErrNotShopOrderMerchant, http.StatusForbidden},
		{errs.NewObjectNotFoundError("courier", "x"), http.StatusNotFound},
		{commands.ErrNoActiveAssignment, http.StatusNotFound},
		{customer.ErrCodeExpired, http.StatusGone},
		{customer.ErrInvalidCode, http.StatusBadRequest},
		{errs.ErrValueIsRequired, http.StatusBadRequest},
		{errs.NewUnavailableError("location index search", assert.AnError), http.StatusServiceUnavailable},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.err.Error(), func(t *testing.T) {
			assert.Equal(t, test.want, statusFor(test.err))
		})
	}
}

func TestStatusFor_WrappedErrorsStillMap(t *testing.T) {
	wrapped := fmt.Errorf("accept assignment: %w", assignment.ErrAlreadyAssigned)

	assert.Equal(t, http.StatusConflict, statusFor(wrapped))
}
