package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Creation(t *testing.T) {
	err := NewValidationError("empty cart", ValidationDetail{Field: "items", Message: "add at least 1 item"})

	assert.NotNil(t, err)
	assert.Equal(t, "empty cart", err.Message)
	assert.Equal(t, "empty cart", err.Error())
	assert.Len(t, err.Details, 1)
	assert.Equal(t, "items", err.Details[0].Field)
}

func TestValidationError_IsValidationError(t *testing.T) {
	err := NewValidationError("invalid product")

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.NotNil(t, ve)

	_, ok = IsValidationError(errors.New("some other error"))
	assert.False(t, ok)
}

func TestNotFoundError_Creation(t *testing.T) {
	message := "order not found"
	err := NewNotFoundError(message)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
}

func TestNotFoundError_IsNotFoundError(t *testing.T) {
	err := NewNotFoundError("test not found")

	nfe, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
	assert.Equal(t, "test not found", nfe.Message)

	_, ok = IsNotFoundError(errors.New("some other error"))
	assert.False(t, ok)
}

func TestConflictError_Creation(t *testing.T) {
	err := NewConflictError("insufficient stock")

	assert.Equal(t, "insufficient stock", err.Error())

	ce, ok := IsConflictError(err)
	assert.True(t, ok)
	assert.Equal(t, "insufficient stock", ce.Message)

	_, ok = IsConflictError(NewNotFoundError("nope"))
	assert.False(t, ok)
}

func TestDeadlockError_Creation(t *testing.T) {
	err := NewDeadlockError("max retries exceeded")

	de, ok := IsDeadlockError(err)
	assert.True(t, ok)
	assert.Equal(t, "max retries exceeded", de.Message)

	_, ok = IsDeadlockError(errors.New("other"))
	assert.False(t, ok)
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError("querying orders", cause)

	assert.Equal(t, "querying orders: connection refused", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))

	bare := NewInternalError("something broke", nil)
	assert.Equal(t, "something broke", bare.Error())
}
