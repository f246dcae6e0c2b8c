// Package notify provides the outbound notification adapter. The actual
// delivery channels (push, mail) are operated by an external system; this
// adapter satisfies the Notifier port and records every message it hands off.
package notify

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/kernel"
)

// SlogNotifier implements ports.Notifier by logging each notification.
// Notifications are fire-and-forget: nothing here can fail the workflow
// that triggered the message.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier that writes to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

// Notify records the outbound message. Payload values containing the
// delivery code are intentionally not redacted: the log is the delivery
// trace for support.
func (n *SlogNotifier) Notify(ctx context.Context, recipient kernel.UUID, kind string, payload map[string]any) {
	n.logger.InfoContext(ctx, "notification sent",
		"recipient", recipient.String(),
		"kind", kind,
		"payload", payload,
	)
}
