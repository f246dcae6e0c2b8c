// Package http provides the inbound HTTP adapter. Routes are registered by
// hand on an echo instance; caller identity arrives in gateway-set headers.
package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCourierHandler     commands.CreateCourierCommandHandler
	reportLocationHandler    commands.ReportLocationCommandHandler
	placeOrderHandler        commands.PlaceOrderCommandHandler
	updateStageHandler       commands.UpdateShopOrderStageCommandHandler
	dispatchHandler          commands.DispatchCommandHandler
	acceptAssignmentHandler  commands.AcceptAssignmentCommandHandler
	requestCompletionHandler commands.RequestCompletionCommandHandler
	confirmCompletionHandler commands.ConfirmCompletionCommandHandler

	// Query handlers
	currentAssignmentHandler queries.GetCurrentAssignmentQueryHandler
	broadcastOffersHandler   queries.ListBroadcastAssignmentsQueryHandler
	customerOrdersHandler    queries.GetCustomerOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCourierHandler commands.CreateCourierCommandHandler,
	reportLocationHandler commands.ReportLocationCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateStageHandler commands.UpdateShopOrderStageCommandHandler,
	dispatchHandler commands.DispatchCommandHandler,
	acceptAssignmentHandler commands.AcceptAssignmentCommandHandler,
	requestCompletionHandler commands.RequestCompletionCommandHandler,
	confirmCompletionHandler commands.ConfirmCompletionCommandHandler,
	currentAssignmentHandler queries.GetCurrentAssignmentQueryHandler,
	broadcastOffersHandler queries.ListBroadcastAssignmentsQueryHandler,
	customerOrdersHandler queries.GetCustomerOrdersQueryHandler,
) *Server {
	return &Server{
		createCourierHandler:     createCourierHandler,
		reportLocationHandler:    reportLocationHandler,
		placeOrderHandler:        placeOrderHandler,
		updateStageHandler:       updateStageHandler,
		dispatchHandler:          dispatchHandler,
		acceptAssignmentHandler:  acceptAssignmentHandler,
		requestCompletionHandler: requestCompletionHandler,
		confirmCompletionHandler: confirmCompletionHandler,
		currentAssignmentHandler: currentAssignmentHandler,
		broadcastOffersHandler:   broadcastOffersHandler,
		customerOrdersHandler:    customerOrdersHandler,
	}
}

// RegisterRoutes wires the server's handlers onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.Recover())

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	// Courier endpoints
	api.POST("/couriers", s.CreateCourier)
	api.POST("/couriers/location", s.ReportLocation)
	api.GET("/assignments", s.ListBroadcastAssignments)
	api.POST("/assignments/:assignmentId/accept", s.AcceptAssignment)
	api.GET("/assignments/current", s.GetCurrentAssignment)
	api.POST("/assignments/current/completion-request", s.RequestCompletion)
	api.POST("/assignments/current/completion-confirm", s.ConfirmCompletion)

	// Customer endpoints
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetMyOrders)

	// Merchant endpoints
	api.PATCH("/shop-orders/:shopOrderId/stage", s.UpdateShopOrderStage)
	api.POST("/shop-orders/:shopOrderId/dispatch", s.Dispatch)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
