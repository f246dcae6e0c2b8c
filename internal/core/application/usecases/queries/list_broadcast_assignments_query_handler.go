package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListBroadcastAssignmentsQueryHandler reads a courier's open offers straight
// from storage. The membership test runs against the live candidate list, so
// an offer disappears from this view the moment somebody wins it.
type ListBroadcastAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewListBroadcastAssignmentsQueryHandler creates a handler for open offer listings.
func NewListBroadcastAssignmentsQueryHandler(db *gorm.DB) ListBroadcastAssignmentsQueryHandler {
	return ListBroadcastAssignmentsQueryHandler{db: db}
}

// Handle executes the query. Newest offers first; an empty list is a normal
// result, not an error.
func (h ListBroadcastAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query ListBroadcastAssignmentsQuery,
) ([]ListBroadcastAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	offers := make([]ListBroadcastAssignmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.shop_order_id,
			a.broadcast_at,
			o.address,
			o.latitude,
			o.longitude,
			o.total_amount
		FROM assignments a
		JOIN orders o ON o.id = a.order_id
		WHERE a.status = ? AND ? = ANY(a.broadcasted_to)
		ORDER BY a.broadcast_at DESC
	`, assignment.StatusBroadcasted.String(), query.CourierID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			offer                     ListBroadcastAssignmentsQueryResponse
			assignmentID, shopOrderID uuid.UUID
			broadcastAt               time.Time
			latitude, longitude       float64
		)

		if err = rows.Scan(
			&assignmentID,
			&shopOrderID,
			&broadcastAt,
			&offer.Address,
			&latitude,
			&longitude,
			&offer.TotalAmount,
		); err != nil {
			return nil, err
		}

		if offer.AssignmentID, err = kernel.UUIDFromBytes(assignmentID[:]); err != nil {
			return nil, err
		}
		if offer.ShopOrderID, err = kernel.UUIDFromBytes(shopOrderID[:]); err != nil {
			return nil, err
		}
		if offer.Destination, err = kernel.NewGeoPoint(latitude, longitude); err != nil {
			return nil, err
		}
		offer.BroadcastAt = broadcastAt

		offers = append(offers, offer)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}
