package commands_test

import (
	"context"
	"errors"
	"testing"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/notification"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewInitiatePaymentCommand(t *testing.T) {
	t.Run("valid_command", func(t *testing.T) {
		cmd, err := commands.NewInitiatePaymentCommand(kernel.NewUUID(), kernel.NewUUID(), "card")
		require.NoError(t, err)
		assert.Equal(t, "card", cmd.Method())
	})

	t.Run("empty_method_is_rejected", func(t *testing.T) {
		_, err := commands.NewInitiatePaymentCommand(kernel.NewUUID(), kernel.NewUUID(), "")
		assert.ErrorIs(t, err, commands.ErrPaymentMethodIsRequired)
	})
}

func TestInitiatePaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewInitiatePaymentCommand(orderID, customerID, "card")
	require.NoError(t, err)

	o := restoreOrder(t, orderID, customerID, kernel.NewUUID(), order.PendingPayment)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, orderID).Return(o, nil).Once()
	orderRepo.On("TransitionStatus", ctx, orderID, order.PendingPayment, order.AwaitingVerification).
		Return(nil).Once()

	notificationRepo := new(MockNotificationRepository)
	notificationRepo.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
		return n.OrderID() == orderID
	})).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("NotificationRepository").Return(notificationRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewInitiatePaymentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	orderRepo.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
}

func TestInitiatePaymentCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewInitiatePaymentCommand(orderID, kernel.NewUUID(), "cash")
	require.NoError(t, err)

	o := restoreOrder(t, orderID, kernel.NewUUID(), kernel.NewUUID(), order.PendingPayment)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, orderID).Return(o, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewInitiatePaymentCommandHandler(factory)
	handleErr := h.Handle(ctx, cmd)

	require.Error(t, handleErr)
	assert.True(t, errors.Is(handleErr, errs.ErrAuthorization))
}

func TestInitiatePaymentCommandHandler_Handle_WrongStatus(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewInitiatePaymentCommand(orderID, customerID, "card")
	require.NoError(t, err)

	o := restoreOrder(t, orderID, customerID, kernel.NewUUID(), order.PendingPrescription)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, orderID).Return(o, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderStatusUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewInitiatePaymentCommandHandler(factory)
	handleErr := h.Handle(ctx, cmd)

	require.Error(t, handleErr)
	assert.True(t, errors.Is(handleErr, errs.ErrConflict))
}

func TestInitiatePaymentCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewInitiatePaymentCommandHandler(new(MockOrderStatusUoWFactory))
	err := h.Handle(context.Background(), commands.InitiatePaymentCommand{})
	require.Error(t, err)
}
