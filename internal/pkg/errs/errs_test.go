package errs_test

import (
	"errors"
	"testing"

	"pharmacy/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("must be greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: must be greater than 0)", err.Error())
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("address")

	assert.Equal(t, "value is required: address", err.Error())
	assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
}

func TestInsufficientStockError(t *testing.T) {
	err := errs.NewInsufficientStockError("9f2c", 3, 7)

	assert.Equal(t, "9f2c", err.ProductID)
	assert.Equal(t, 3, err.Available)
	assert.Equal(t, 7, err.Required)
	assert.Equal(t, "insufficient stock: product is: 9f2c, available is: 3, required is: 7", err.Error())
	assert.True(t, errors.Is(err, errs.ErrInsufficientStock))
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("order", "123")

		assert.Equal(t, "conflict: param is: order, ID is: 123", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("status no longer awaiting_verification")
		err := errs.NewConflictErrorWithCause("order", "123", cause)

		assert.Equal(t,
			"conflict: param is: order, ID is: 123 (cause: status no longer awaiting_verification)",
			err.Error())
		assert.True(t, errors.Is(err, errs.ErrConflict))
	})
}

func TestAuthorizationError(t *testing.T) {
	err := errs.NewAuthorizationError("cashier", "prescription.decide")

	assert.Equal(t, "operation is not allowed: role is: cashier, operation is: prescription.decide", err.Error())
	assert.True(t, errors.Is(err, errs.ErrAuthorization))
}
