package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for the
// notification outbox. Rows are written inside workflow transactions and
// drained by the dispatch job.
type NotificationRepository interface {
	// Add persists a pending notification.
	Add(ctx context.Context, n *notification.Notification) error

	// GetPending retrieves up to limit pending notifications, oldest first.
	GetPending(ctx context.Context, limit int) ([]*notification.Notification, error)

	// Update persists a status change (pending -> sent).
	Update(ctx context.Context, n *notification.Notification) error
}
