// Package notifier provides the outbound notification transport.
//
// The real platform pushes messages through the shared messaging gateway;
// this deployment logs the hand-off, which is enough for the workflow since
// the outbox keeps the authoritative record of what was sent when.
package notifier

import (
	"context"
	"log/slog"

	"pharmacy/internal/core/domain/model/notification"
	"pharmacy/internal/core/domain/model/staff"
)

// LogNotifier implements the Notifier port by writing structured log records.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that logs each delivered message.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

// Send delivers one notification by logging it.
func (ln *LogNotifier) Send(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	attrs := []any{
		"notification_id", n.ID().String(),
		"order_id", n.OrderID().String(),
		"title", n.Title(),
	}
	if recipientID := n.RecipientID(); recipientID != nil {
		attrs = append(attrs, "recipient_id", recipientID.String())
	}
	if n.RecipientRole() != staff.RoleUnknown {
		attrs = append(attrs, "recipient_role", n.RecipientRole().String())
	}

	ln.logger.InfoContext(ctx, "Notification delivered", attrs...)
	return nil
}
