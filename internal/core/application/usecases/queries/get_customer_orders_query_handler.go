package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads a customer's order history with the
// per-shop rows folded under their order, newest order first.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for order history lookups.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. A customer with no orders gets an empty list.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCustomerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.address,
			o.payment_method,
			o.total_amount,
			o.created_at,
			so.id,
			so.shop_id,
			so.subtotal,
			so.stage
		FROM orders o
		JOIN shop_orders so ON so.order_id = o.id
		WHERE o.customer_id = ?
		ORDER BY o.created_at DESC, so.id
	`, query.CustomerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Rows arrive sorted by order, so each order's shop rows are contiguous.
	for rows.Next() {
		var (
			orderID, shopOrderID, shopID uuid.UUID
			address, paymentMethod       string
			totalAmount                  float64
			createdAt                    time.Time
			part                         CustomerShopOrderResponse
		)

		if err = rows.Scan(
			&orderID,
			&address,
			&paymentMethod,
			&totalAmount,
			&createdAt,
			&shopOrderID,
			&shopID,
			&part.Subtotal,
			&part.Stage,
		); err != nil {
			return nil, err
		}

		oid, err := kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return nil, err
		}
		if part.ShopOrderID, err = kernel.UUIDFromBytes(shopOrderID[:]); err != nil {
			return nil, err
		}
		if part.ShopID, err = kernel.UUIDFromBytes(shopID[:]); err != nil {
			return nil, err
		}

		if len(orders) == 0 || orders[len(orders)-1].OrderID != oid {
			orders = append(orders, GetCustomerOrdersQueryResponse{
				OrderID:       oid,
				Address:       address,
				PaymentMethod: paymentMethod,
				TotalAmount:   totalAmount,
				CreatedAt:     createdAt,
			})
		}
		last := &orders[len(orders)-1]
		last.ShopOrders = append(last.ShopOrders, part)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
