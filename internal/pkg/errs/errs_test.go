package errs_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label string

func (l label) String() string { return string(l) }

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("delivery", "123")

		assert.Equal(t, "delivery", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: delivery 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("courier", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: courier 123 (cause: database connection failed)",
			err.Error())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("delivery", 456)
		assert.Equal(t, "object not found: delivery 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("delivery_date", cause)

		assert.Equal(t, "value is invalid: delivery_date (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("rating", 6, 1, 5)

		assert.Equal(t, 6, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 5, err.Max)
		assert.Equal(t, "value is out of range: rating is 6, min value is 1, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("lat", -95, -90, 90, cause)

		assert.Equal(t,
			"value is out of range: lat is -95, min value is -90, max value is 90 (cause: validation failed)",
			err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("recipient_name")
	assert.Equal(t, "value is required: recipient_name", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	withCause := errs.NewValueIsRequiredErrorWithCause("photo", errors.New("empty"))
	assert.Equal(t, "value is required: photo (cause: empty)", withCause.Error())
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("plain transition", func(t *testing.T) {
		err := errs.NewInvalidTransitionError(label("PENDING"), label("DELIVERED"))

		assert.Equal(t, "PENDING", err.From)
		assert.Equal(t, "DELIVERED", err.To)
		assert.Equal(t, "invalid status transition: PENDING -> DELIVERED", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.NotErrorIs(t, err, errs.ErrTerminalState)
	})

	t.Run("terminal state matches both sentinels", func(t *testing.T) {
		err := errs.NewTerminalStateError(label("DELIVERED"), label("FAILED"))

		require.ErrorIs(t, err, errs.ErrTerminalState)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "DELIVERED -> FAILED")
	})

	t.Run("errors.As exposes details", func(t *testing.T) {
		var wrapped error = errs.NewInvalidTransitionError(label("ASSIGNED"), label("DELIVERED"))
		var target *errs.InvalidTransitionError
		require.ErrorAs(t, wrapped, &target)
		assert.Equal(t, "ASSIGNED", target.From)
	})
}

func TestDeleteRejectedError(t *testing.T) {
	err := errs.NewDeleteRejectedError("delivery", "status is DELIVERED")
	assert.Equal(t, "delete rejected: delivery (status is DELIVERED)", err.Error())
	require.ErrorIs(t, err, errs.ErrDeleteRejected)
}

func TestExternalServiceError(t *testing.T) {
	cause := errors.New("timeout")
	err := errs.NewExternalServiceError("geocoder", cause)

	require.ErrorIs(t, err, errs.ErrExternalServiceFailure)
	require.ErrorIs(t, err, cause)
	assert.Equal(t, "external service degraded: geocoder (cause: timeout)", err.Error())
	assert.Equal(t, "external service degraded: router", errs.NewExternalServiceError("router", nil).Error())
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection reset")
	err := errs.NewPersistenceError("update delivery", cause)

	require.ErrorIs(t, err, errs.ErrPersistence)
	require.ErrorIs(t, err, cause)
	assert.Equal(t, "persistence failure: update delivery (cause: connection reset)", err.Error())
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "invalid status transition", errs.ErrInvalidTransition.Error())
	assert.Equal(t, "invalid status transition: delivery is in a terminal state", errs.ErrTerminalState.Error())
	require.ErrorIs(t, errs.ErrTerminalState, errs.ErrInvalidTransition)
}
