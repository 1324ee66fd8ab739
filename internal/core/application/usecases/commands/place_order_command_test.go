package commands_test

import (
	"testing"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/domain/model/delivery"
	"pharmacy/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	lines := []commands.OrderLine{{ProductID: kernel.NewUUID(), Quantity: 2}}

	t.Run("valid_command", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			lines, delivery.HomeDelivery, "123 Main Street",
		)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Len(t, cmd.Lines(), 1)
		assert.Equal(t, delivery.HomeDelivery, cmd.Method())
	})

	t.Run("empty_lines_are_rejected", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, delivery.InStorePickup, "",
		)
		assert.ErrorIs(t, err, commands.ErrLinesAreRequired)
	})

	t.Run("zero_quantity_is_rejected", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]commands.OrderLine{{ProductID: kernel.NewUUID(), Quantity: 0}},
			delivery.InStorePickup, "",
		)
		assert.Error(t, err)
	})

	t.Run("invalid_method_is_rejected", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			lines, delivery.MethodUnknown, "",
		)
		assert.Error(t, err)
	})

	t.Run("zero_value_fails_validate", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}
