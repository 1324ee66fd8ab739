package inventory_test

import (
	"errors"
	"testing"

	"pharmacy/internal/core/domain/model/inventory"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	t.Run("valid_record", func(t *testing.T) {
		r, err := inventory.NewRecord(kernel.NewUUID(), kernel.NewUUID(), 10)

		require.NoError(t, err)
		assert.Equal(t, 10, r.Quantity())
	})

	t.Run("zero_quantity_is_valid", func(t *testing.T) {
		_, err := inventory.NewRecord(kernel.NewUUID(), kernel.NewUUID(), 0)
		require.NoError(t, err)
	})

	t.Run("negative_quantity_is_invalid", func(t *testing.T) {
		_, err := inventory.NewRecord(kernel.NewUUID(), kernel.NewUUID(), -1)
		require.Error(t, err)
	})
}

func TestRecord_Deduct(t *testing.T) {
	t.Run("deducts_when_sufficient", func(t *testing.T) {
		r, _ := inventory.NewRecord(kernel.NewUUID(), kernel.NewUUID(), 10)

		require.NoError(t, r.Deduct(7))
		assert.Equal(t, 3, r.Quantity())
	})

	t.Run("exact_quantity_drains_to_zero", func(t *testing.T) {
		r, _ := inventory.NewRecord(kernel.NewUUID(), kernel.NewUUID(), 5)

		require.NoError(t, r.Deduct(5))
		assert.Equal(t, 0, r.Quantity())
	})

	t.Run("insufficient_stock_reports_product", func(t *testing.T) {
		productID := kernel.NewUUID()
		r, _ := inventory.NewRecord(productID, kernel.NewUUID(), 3)

		err := r.Deduct(7)

		require.Error(t, err)
		var stockErr *errs.InsufficientStockError
		require.True(t, errors.As(err, &stockErr))
		assert.Equal(t, productID.String(), stockErr.ProductID)
		assert.Equal(t, 3, stockErr.Available)
		assert.Equal(t, 7, stockErr.Required)

		// Failed deductions never change the record.
		assert.Equal(t, 3, r.Quantity())
	})

	t.Run("non_positive_quantity_is_invalid", func(t *testing.T) {
		r, _ := inventory.NewRecord(kernel.NewUUID(), kernel.NewUUID(), 3)
		require.Error(t, r.Deduct(0))
		require.Error(t, r.Deduct(-1))
	})
}

func TestRecord_Replenish(t *testing.T) {
	t.Run("adds_to_existing_quantity", func(t *testing.T) {
		r, _ := inventory.NewRecord(kernel.NewUUID(), kernel.NewUUID(), 2)

		require.NoError(t, r.Replenish(5))
		require.NoError(t, r.Replenish(3))
		assert.Equal(t, 10, r.Quantity())
	})

	t.Run("is_commutative", func(t *testing.T) {
		a, _ := inventory.NewRecord(kernel.NewUUID(), kernel.NewUUID(), 0)
		b, _ := inventory.NewRecord(kernel.NewUUID(), kernel.NewUUID(), 0)

		require.NoError(t, a.Replenish(5))
		require.NoError(t, a.Replenish(3))

		require.NoError(t, b.Replenish(3))
		require.NoError(t, b.Replenish(5))

		assert.Equal(t, a.Quantity(), b.Quantity())
	})

	t.Run("non_positive_quantity_is_invalid", func(t *testing.T) {
		r, _ := inventory.NewRecord(kernel.NewUUID(), kernel.NewUUID(), 2)
		require.Error(t, r.Replenish(0))
		require.Error(t, r.Replenish(-4))
	})
}
