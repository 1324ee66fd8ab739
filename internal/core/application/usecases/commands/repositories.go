// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"pharmacy/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler declares the narrowest composition it needs, so tests mock only
// the repositories a command actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// PrescriptionRepoFactory provides access to the prescription repository within a transaction.
	PrescriptionRepoFactory interface {
		PrescriptionRepository() ports.PrescriptionRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// NotificationRepoFactory provides access to the notification outbox within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// PlaceOrderUoW manages the order placement transaction: stock deduction,
	// order creation, and the delivery record, all atomically.
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		InventoryRepoFactory
		DeliveryRepoFactory
	}

	// PlaceOrderUoWFactory creates unit of work instances for order placement.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// PrescriptionUoW manages transactions touching an order, its
	// prescription, and the notification outbox.
	PrescriptionUoW interface {
		TxManager
		OrderRepoFactory
		PrescriptionRepoFactory
		NotificationRepoFactory
	}

	// PrescriptionUoWFactory creates unit of work instances for prescription operations.
	PrescriptionUoWFactory interface {
		Create() PrescriptionUoW
	}

	// OrderStatusUoW manages transactions that move an order's status and
	// write a notification, nothing else.
	OrderStatusUoW interface {
		TxManager
		OrderRepoFactory
		NotificationRepoFactory
	}

	// OrderStatusUoWFactory creates unit of work instances for order status transitions.
	OrderStatusUoWFactory interface {
		Create() OrderStatusUoW
	}

	// ConfirmPaymentUoW manages the payment confirmation transaction: the
	// payment and receipt rows, the order and delivery transitions, and the
	// warehouse notification.
	ConfirmPaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
		DeliveryRepoFactory
		NotificationRepoFactory
	}

	// ConfirmPaymentUoWFactory creates unit of work instances for payment confirmation.
	ConfirmPaymentUoWFactory interface {
		Create() ConfirmPaymentUoW
	}

	// DeliveryUoW manages delivery progression transactions. The order
	// repository is included because completing a delivery also completes
	// the parent order.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		NotificationRepoFactory
	}

	// DeliveryUoWFactory creates unit of work instances for delivery progression.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// CancelOrderUoW manages cancellation transactions: the order transition
	// plus restocking of the quantities deducted at placement.
	CancelOrderUoW interface {
		TxManager
		OrderRepoFactory
		InventoryRepoFactory
	}

	// CancelOrderUoWFactory creates unit of work instances for order cancellation.
	CancelOrderUoWFactory interface {
		Create() CancelOrderUoW
	}

	// InventoryUoW manages stock replenishment transactions.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
	}

	// InventoryUoWFactory creates unit of work instances for stock replenishment.
	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// DispatchNotificationsUoW manages one outbox drain transaction.
	DispatchNotificationsUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// DispatchNotificationsUoWFactory creates unit of work instances for outbox dispatch.
	DispatchNotificationsUoWFactory interface {
		Create() DispatchNotificationsUoW
	}
)
