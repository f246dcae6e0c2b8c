package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateCourierRequest is the body for POST /api/v1/couriers.
type CreateCourierRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Mobile    string  `json:"mobile"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateCourierResponse returns the generated courier ID.
type CreateCourierResponse struct {
	CourierID string `json:"courierId"`
}

// ReportLocationRequest is the body for POST /api/v1/couriers/location.
type ReportLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateCourier handles POST /api/v1/couriers - registers a new courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var body CreateCourierRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	location, err := kernel.NewGeoPoint(body.Latitude, body.Longitude)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateCourierCommand(body.Name, body.Email, body.Mobile, location)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateCourierResponse{
		CourierID: cmd.CourierID().String(),
	})
}

// ReportLocation handles POST /api/v1/couriers/location - updates the calling
// courier's position in the location index.
func (s *Server) ReportLocation(ctx echo.Context) error {
	courierID, err := callerID(ctx, RoleCourier)
	if err != nil {
		return err
	}

	var body ReportLocationRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	location, err := kernel.NewGeoPoint(body.Latitude, body.Longitude)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReportLocationCommand(courierID, location)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.reportLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
