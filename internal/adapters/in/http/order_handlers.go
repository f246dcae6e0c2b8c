package http

import (
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// PlaceOrderRequest is the body for POST /api/v1/orders. Items from different
// shops may be mixed freely; the order is split per shop on the way in.
type PlaceOrderRequest struct {
	Address       string            `json:"address"`
	Latitude      float64           `json:"latitude"`
	Longitude     float64           `json:"longitude"`
	PaymentMethod string            `json:"paymentMethod"`
	Items         []CartItemRequest `json:"items"`
}

// CartItemRequest is one cart line as submitted at checkout.
type CartItemRequest struct {
	ShopID   string  `json:"shopId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"imageUrl"`
	FoodType string  `json:"foodType"`
}

// PlaceOrderResponse returns the generated order ID.
type PlaceOrderResponse struct {
	OrderID string `json:"orderId"`
}

// CustomerOrderResponse is one past or in-flight order of the calling customer.
type CustomerOrderResponse struct {
	OrderID       string                      `json:"orderId"`
	Address       string                      `json:"address"`
	PaymentMethod string                      `json:"paymentMethod"`
	TotalAmount   float64                     `json:"totalAmount"`
	CreatedAt     time.Time                   `json:"createdAt"`
	ShopOrders    []CustomerShopOrderResponse `json:"shopOrders"`
}

// CustomerShopOrderResponse is the per-shop slice of an order.
type CustomerShopOrderResponse struct {
	ShopOrderID string  `json:"shopOrderId"`
	ShopID      string  `json:"shopId"`
	Subtotal    float64 `json:"subtotal"`
	Stage       string  `json:"stage"`
}

// UpdateStageRequest is the body for PATCH /api/v1/shop-orders/:shopOrderId/stage.
type UpdateStageRequest struct {
	Stage string `json:"stage"`
}

// PlaceOrder handles POST /api/v1/orders - customer checkout.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	customerID, err := callerID(ctx, RoleCustomer)
	if err != nil {
		return err
	}

	var body PlaceOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	destination, err := kernel.NewGeoPoint(body.Latitude, body.Longitude)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]commands.CartItem, len(body.Items))
	for i, item := range body.Items {
		shopID, err := kernel.UUIDFromString(item.ShopID)
		if err != nil {
			return respondBadRequest(ctx, "invalid shop id in cart")
		}

		items[i] = commands.CartItem{
			ShopID:   shopID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			ImageURL: item.ImageURL,
			FoodType: order.FoodType(item.FoodType),
		}
	}

	cmd, err := commands.NewPlaceOrderCommand(
		customerID,
		body.Address,
		destination,
		order.PaymentMethod(body.PaymentMethod),
		items,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{
		OrderID: cmd.OrderID().String(),
	})
}

// GetMyOrders handles GET /api/v1/orders - lists the calling customer's
// orders, newest first.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	customerID, err := callerID(ctx, RoleCustomer)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.customerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]CustomerOrderResponse, len(orders))
	for i, ord := range orders {
		shopOrders := make([]CustomerShopOrderResponse, len(ord.ShopOrders))
		for j, shopOrder := range ord.ShopOrders {
			shopOrders[j] = CustomerShopOrderResponse{
				ShopOrderID: shopOrder.ShopOrderID.String(),
				ShopID:      shopOrder.ShopID.String(),
				Subtotal:    shopOrder.Subtotal,
				Stage:       shopOrder.Stage,
			}
		}

		response[i] = CustomerOrderResponse{
			OrderID:       ord.OrderID.String(),
			Address:       ord.Address,
			PaymentMethod: ord.PaymentMethod,
			TotalAmount:   ord.TotalAmount,
			CreatedAt:     ord.CreatedAt,
			ShopOrders:    shopOrders,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateShopOrderStage handles PATCH /api/v1/shop-orders/:shopOrderId/stage -
// the merchant moves a shop order through its fulfillment stages.
func (s *Server) UpdateShopOrderStage(ctx echo.Context) error {
	merchantID, err := callerID(ctx, RoleMerchant)
	if err != nil {
		return err
	}

	shopOrderID, err := kernel.UUIDFromString(ctx.Param("shopOrderId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid shop order id")
	}

	var body UpdateStageRequest
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	stage, err := order.StageFromString(body.Stage)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateShopOrderStageCommand(shopOrderID, merchantID, stage)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateStageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Dispatch handles POST /api/v1/shop-orders/:shopOrderId/dispatch - the
// merchant hands a ready shop order to the dispatch workflow, which broadcasts
// it to nearby free couriers.
func (s *Server) Dispatch(ctx echo.Context) error {
	if _, err := callerID(ctx, RoleMerchant); err != nil {
		return err
	}

	shopOrderID, err := kernel.UUIDFromString(ctx.Param("shopOrderId"))
	if err != nil {
		return respondBadRequest(ctx, "invalid shop order id")
	}

	cmd, err := commands.NewDispatchCommand(shopOrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.dispatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}
