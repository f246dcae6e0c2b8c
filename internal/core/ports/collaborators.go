package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// Notification kinds emitted by the dispatch workflows.
const (
	NotificationAssignmentOffer  = "assignment_offer"
	NotificationOrderStatus      = "order_status"
	NotificationDeliveryCode     = "delivery_code"
	NotificationDeliveryComplete = "delivery_complete"
)

// Notifier delivers out-of-band messages (push, mail) to a user.
// Delivery is fire-and-forget: implementations log failures and never
// propagate them into the calling transaction.
type Notifier interface {
	Notify(ctx context.Context, recipient kernel.UUID, kind string, payload map[string]any)
}

// EventBus publishes observational domain events for live consumers
// (tracking screens, dashboards). Publishing failures never affect the
// workflow outcome.
type EventBus interface {
	Publish(ctx context.Context, channel string, event map[string]any)
}

// ShopDirectory resolves catalog facts about shops. Read-only; the catalog
// itself is owned by another system.
type ShopDirectory interface {
	// ResolveMerchant returns the merchant operating the given shop.
	ResolveMerchant(ctx context.Context, shopID kernel.UUID) (kernel.UUID, error)

	// ResolveLocation returns the shop's pickup point.
	ResolveLocation(ctx context.Context, shopID kernel.UUID) (kernel.GeoPoint, error)
}
