package http

import (
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GeoPointResponse is the JSON shape of a coordinate pair.
type GeoPointResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// BroadcastAssignmentResponse is one open offer visible to the calling courier.
type BroadcastAssignmentResponse struct {
	AssignmentID string           `json:"assignmentId"`
	ShopOrderID  string           `json:"shopOrderId"`
	BroadcastAt  time.Time        `json:"broadcastAt"`
	Address      string           `json:"address"`
	Destination  GeoPointResponse `json:"destination"`
	TotalAmount  float64          `json:"totalAmount"`
}

// CurrentAssignmentResponse is the courier's active job with the delivery
// contact details.
type CurrentAssignmentResponse struct {
	AssignmentID   string           `json:"assignmentId"`
	ShopOrderID    string           `json:"shopOrderId"`
	AcceptedAt     time.Time        `json:"acceptedAt"`
	Address        string           `json:"address"`
	Destination    GeoPointResponse `json:"destination"`
	CustomerName   string           `json:"customerName"`
	CustomerMobile string           `json:"customerMobile"`
}

// ConfirmCompletionRequest is the body for POST /api/v1/assignments/current/completion-confirm.
type ConfirmCompletionRequest struct {
	Code string `json:"code"`
}

// ListBroadcastAssignments handles GET /api/v1/assignments - lists the open
// offers broadcast to the calling courier, newest first.
func (s *Server) ListBroadcastAssignments(ctx echo.Context) error {
	courierID, err := callerID(ctx, RoleCourier)
	if err != nil {
		return err
	}

	query, err := queries.NewListBroadcastAssignmentsQuery(courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	offers, err := s.broadcastOffersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]BroadcastAssignmentResponse, len(offers))
	for i, offer := range offers {
		response[i] = BroadcastAssignmentResponse{
			AssignmentID: offer.AssignmentID.String(),
			ShopOrderID:  offer.ShopOrderID.String(),
			BroadcastAt:  offer.BroadcastAt,
			Address:      offer.Address,
			Destination: GeoPointResponse{
				Latitude:  offer.Destination.Latitude(),
				Longitude: offer.Destination.Longitude(),
			},
			TotalAmount: offer.TotalAmount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptAssignment handles POST /api/v1/assignments/:assignmentId/accept -
// claims a broadcast offer for the calling courier. Exactly one courier wins;
// the rest receive a conflict.
func (s *Server) AcceptAssignment(ctx echo.Context) error {
	courierID, err := callerID(ctx, RoleCourier)
	if err != nil {
		return err
	}

	assignmentID, err := kernel.UUIDFromString(ctx.Param("assignmentId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid assignment id")
	}

	cmd, err := commands.NewAcceptAssignmentCommand(assignmentID, courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.acceptAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCurrentAssignment handles GET /api/v1/assignments/current - returns the
// calling courier's active job.
func (s *Server) GetCurrentAssignment(ctx echo.Context) error {
	courierID, err := callerID(ctx, RoleCourier)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCurrentAssignmentQuery(courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	current, err := s.currentAssignmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CurrentAssignmentResponse{
		AssignmentID: current.AssignmentID.String(),
		ShopOrderID:  current.ShopOrderID.String(),
		AcceptedAt:   current.AcceptedAt,
		Address:      current.Address,
		Destination: GeoPointResponse{
			Latitude:  current.Destination.Latitude(),
			Longitude: current.Destination.Longitude(),
		},
		CustomerName:   current.CustomerName,
		CustomerMobile: current.CustomerMobile,
	})
}

// RequestCompletion handles POST /api/v1/assignments/current/completion-request -
// issues a fresh delivery code to the customer of the courier's active job.
// The code travels to the customer through the notifier, never in this response.
func (s *Server) RequestCompletion(ctx echo.Context) error {
	courierID, err := callerID(ctx, RoleCourier)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRequestCompletionCommand(courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.requestCompletionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

// ConfirmCompletion handles POST /api/v1/assignments/current/completion-confirm -
// verifies the code the customer read out and closes the delivery.
func (s *Server) ConfirmCompletion(ctx echo.Context) error {
	courierID, err := callerID(ctx, RoleCourier)
	if err != nil {
		return err
	}

	var body ConfirmCompletionRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewConfirmCompletionCommand(courierID, body.Code)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.confirmCompletionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
