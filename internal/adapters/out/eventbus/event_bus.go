// Package eventbus provides the outbound domain event adapter. Real-time
// fan-out (tracking screens, dashboards) is an external collaborator; this
// adapter satisfies the EventBus port and records every published event.
package eventbus

import (
	"context"
	"log/slog"
)

// SlogEventBus implements ports.EventBus by logging each event.
// Events are observational: consumers build views from them, the dispatch
// workflow never depends on their delivery.
type SlogEventBus struct {
	logger *slog.Logger
}

// NewSlogEventBus creates an event bus that writes to the given logger.
func NewSlogEventBus(logger *slog.Logger) *SlogEventBus {
	return &SlogEventBus{
		logger: logger.With("component", "eventbus"),
	}
}

// Publish records the event.
func (b *SlogEventBus) Publish(ctx context.Context, channel string, event map[string]any) {
	b.logger.InfoContext(ctx, "event published",
		"channel", channel,
		"event", event,
	)
}
