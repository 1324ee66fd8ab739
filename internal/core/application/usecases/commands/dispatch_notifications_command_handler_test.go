package commands_test

import (
	"context"
	"errors"
	"testing"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/notification"
	"pharmacy/internal/core/domain/model/staff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewDispatchNotificationsCommand(t *testing.T) {
	t.Run("valid_command", func(t *testing.T) {
		cmd, err := commands.NewDispatchNotificationsCommand(25)
		require.NoError(t, err)
		assert.Equal(t, 25, cmd.Limit())
	})

	t.Run("non_positive_limit_is_rejected", func(t *testing.T) {
		_, err := commands.NewDispatchNotificationsCommand(0)
		assert.Error(t, err)

		_, err = commands.NewDispatchNotificationsCommand(-5)
		assert.Error(t, err)
	})
}

func pendingNotification(t *testing.T) *notification.Notification {
	t.Helper()
	n, err := notification.NewForRole(
		kernel.NewUUID(),
		staff.RolePharmacist,
		kernel.NewUUID(),
		"Prescription awaiting validation",
		"A prescription needs a decision",
	)
	require.NoError(t, err)
	return n
}

func TestDispatchNotificationsCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewDispatchNotificationsCommand(10)
	require.NoError(t, err)

	first := pendingNotification(t)
	second := pendingNotification(t)

	notificationRepo := new(MockNotificationRepository)
	notificationRepo.On("GetPending", ctx, 10).
		Return([]*notification.Notification{first, second}, nil).Once()
	notificationRepo.On("Update", ctx, first).Return(nil).Once()
	notificationRepo.On("Update", ctx, second).Return(nil).Once()

	notifier := new(MockNotifier)
	notifier.On("Send", ctx, first).Return(nil).Once()
	notifier.On("Send", ctx, second).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("NotificationRepository").Return(notificationRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchNotificationsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchNotificationsCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, notification.StatusSent, first.Status())
	assert.Equal(t, notification.StatusSent, second.Status())
	notificationRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestDispatchNotificationsCommandHandler_Handle_FailedSendStaysPending(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewDispatchNotificationsCommand(10)
	require.NoError(t, err)

	failing := pendingNotification(t)
	working := pendingNotification(t)
	sendErr := errors.New("transport unavailable")

	notificationRepo := new(MockNotificationRepository)
	notificationRepo.On("GetPending", ctx, 10).
		Return([]*notification.Notification{failing, working}, nil).Once()
	notificationRepo.On("Update", ctx, working).Return(nil).Once()

	notifier := new(MockNotifier)
	notifier.On("Send", ctx, failing).Return(sendErr).Once()
	notifier.On("Send", ctx, working).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("NotificationRepository").Return(notificationRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchNotificationsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchNotificationsCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, sendErr)

	assert.Equal(t, notification.StatusPending, failing.Status(), "Failed hand-off must stay pending")
	assert.Equal(t, notification.StatusSent, working.Status(), "Other rows still dispatch")
	notificationRepo.AssertExpectations(t)
}

func TestDispatchNotificationsCommandHandler_Handle_EmptyOutbox(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewDispatchNotificationsCommand(10)
	require.NoError(t, err)

	notificationRepo := new(MockNotificationRepository)
	notificationRepo.On("GetPending", ctx, 10).Return(nil, nil).Once()

	notifier := new(MockNotifier)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("NotificationRepository").Return(notificationRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchNotificationsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchNotificationsCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestDispatchNotificationsCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewDispatchNotificationsCommandHandler(
		new(MockDispatchNotificationsUoWFactory), new(MockNotifier))
	err := h.Handle(context.Background(), commands.DispatchNotificationsCommand{})
	require.Error(t, err)
}
