package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/notification"
)

// Notifier hands a notification to the external delivery mechanism
// (e-mail, SMS, push). The outbox dispatch job is its only caller.
type Notifier interface {
	// Send delivers one notification. A nil error means the message was
	// accepted by the transport; the outbox row is then marked sent.
	Send(ctx context.Context, n *notification.Notification) error
}
