package commands_test

import (
	"testing"
	"time"

	"pharmacy/internal/core/domain/model/inventory"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

// restoreOrder rebuilds an order with one line (2 x 500) in the given status.
func restoreOrder(t *testing.T, orderID, customerID, branchID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 2, mustMoney(t, 500))
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		orderID, customerID, branchID,
		[]order.Item{item}, status, mustMoney(t, 1000), time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func restoreRecord(t *testing.T, productID, branchID kernel.UUID, quantity int) *inventory.Record {
	t.Helper()
	record, err := inventory.RestoreRecord(productID, branchID, quantity)
	require.NoError(t, err)
	return record
}
