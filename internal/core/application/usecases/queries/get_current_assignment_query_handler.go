package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCurrentAssignmentQueryHandler reads the courier's Assigned job directly
// from storage, bypassing the aggregates for read performance.
type GetCurrentAssignmentQueryHandler struct {
	db *gorm.DB
}

// NewGetCurrentAssignmentQueryHandler creates a handler for active job lookups.
func NewGetCurrentAssignmentQueryHandler(db *gorm.DB) GetCurrentAssignmentQueryHandler {
	return GetCurrentAssignmentQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ErrObjectNotFound when the courier holds no job right now.
func (h GetCurrentAssignmentQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentAssignmentQuery,
) (GetCurrentAssignmentQueryResponse, error) {
	var response GetCurrentAssignmentQueryResponse

	if err := query.Validate(); err != nil {
		return response, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.shop_order_id,
			a.accepted_at,
			o.address,
			o.latitude,
			o.longitude,
			c.name,
			c.mobile
		FROM assignments a
		JOIN orders o ON o.id = a.order_id
		JOIN customers c ON c.id = o.customer_id
		WHERE a.accepted_by = ? AND a.status = ?
	`, query.CourierID().String(), assignment.StatusAssigned.String()).Rows()
	if err != nil {
		return response, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return response, err
		}
		return response, errs.NewObjectNotFoundError("courierId", query.CourierID())
	}

	var (
		assignmentID, shopOrderID uuid.UUID
		acceptedAt                time.Time
		latitude, longitude       float64
	)

	if err = rows.Scan(
		&assignmentID,
		&shopOrderID,
		&acceptedAt,
		&response.Address,
		&latitude,
		&longitude,
		&response.CustomerName,
		&response.CustomerMobile,
	); err != nil {
		return response, err
	}

	if response.AssignmentID, err = kernel.UUIDFromBytes(assignmentID[:]); err != nil {
		return response, err
	}
	if response.ShopOrderID, err = kernel.UUIDFromBytes(shopOrderID[:]); err != nil {
		return response, err
	}
	if response.Destination, err = kernel.NewGeoPoint(latitude, longitude); err != nil {
		return response, err
	}
	response.AcceptedAt = acceptedAt

	return response, rows.Err()
}
