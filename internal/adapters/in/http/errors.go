package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps workflow errors onto HTTP statuses. The mapping follows
// the error taxonomy: conflicts for lost races and invalid transitions,
// forbidden for callers acting outside their grant, gone for expired codes.
func respondError(ctx echo.Context, err error) error {
	status := statusFor(err)
	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, assignment.ErrAlreadyAssigned),
		errors.Is(err, order.ErrAlreadyDispatched),
		errors.Is(err, order.ErrNotOutForDelivery),
		errors.Is(err, assignment.ErrInvalidState),
		errors.Is(err, order.ErrInvalidStageTransition):
		return http.StatusConflict
	case errors.Is(err, assignment.ErrNotEligible),
		errors.Is(err, commands.ErrNotShopOrderMerchant):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrNoActiveAssignment):
		return http.StatusNotFound
	case errors.Is(err, customer.ErrCodeExpired):
		return http.StatusGone
	case errors.Is(err, customer.ErrInvalidCode),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
