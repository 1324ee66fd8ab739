package notification_test

import (
	"testing"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/notification"
	"pharmacy/internal/core/domain/model/staff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewForRecipient(t *testing.T) {
	t.Run("creates_pending_notification", func(t *testing.T) {
		recipientID := kernel.NewUUID()
		orderID := kernel.NewUUID()

		n, err := notification.NewForRecipient(
			kernel.NewUUID(), recipientID, orderID, "Order update", "Your prescription was approved")

		require.NoError(t, err)
		assert.Equal(t, notification.StatusPending, n.Status())
		require.NotNil(t, n.RecipientID())
		assert.Equal(t, recipientID, *n.RecipientID())
		assert.Equal(t, staff.RoleUnknown, n.RecipientRole())
		assert.Equal(t, orderID, n.OrderID())
		assert.Nil(t, n.SentAt())
	})

	t.Run("empty_title_is_rejected", func(t *testing.T) {
		_, err := notification.NewForRecipient(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", "body")
		assert.Error(t, err)
	})

	t.Run("empty_message_is_rejected", func(t *testing.T) {
		_, err := notification.NewForRecipient(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "title", "")
		assert.Error(t, err)
	})
}

func TestNewForRole(t *testing.T) {
	t.Run("creates_role_wide_notification", func(t *testing.T) {
		n, err := notification.NewForRole(
			kernel.NewUUID(), staff.RoleCashier, kernel.NewUUID(),
			"Payment pending", "An order awaits payment verification")

		require.NoError(t, err)
		assert.Nil(t, n.RecipientID())
		assert.Equal(t, staff.RoleCashier, n.RecipientRole())
	})

	t.Run("invalid_role_is_rejected", func(t *testing.T) {
		_, err := notification.NewForRole(
			kernel.NewUUID(), staff.RoleUnknown, kernel.NewUUID(), "title", "body")
		assert.Error(t, err)
	})
}

func TestMarkSent(t *testing.T) {
	n, err := notification.NewForRole(
		kernel.NewUUID(), staff.RoleWarehouse, kernel.NewUUID(), "title", "body")
	require.NoError(t, err)

	require.NoError(t, n.MarkSent())
	assert.Equal(t, notification.StatusSent, n.Status())
	require.NotNil(t, n.SentAt())

	assert.ErrorIs(t, n.MarkSent(), notification.ErrAlreadySent)
}
