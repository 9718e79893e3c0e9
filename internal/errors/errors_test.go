package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Creation(t *testing.T) {
	message := "order not found"
	err := NewNotFoundError(message)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
}

func TestNotFoundError_IsNotFoundError(t *testing.T) {
	err := NewNotFoundError("test not found")

	notFoundErr, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, notFoundErr)
	assert.Equal(t, "test not found", notFoundErr.Message)
}

func TestNotFoundError_IsNotFoundError_WithOtherError(t *testing.T) {
	err := errors.New("some other error")

	notFoundErr, ok := IsNotFoundError(err)
	assert.False(t, ok)
	assert.Nil(t, notFoundErr)
}

func TestNotFoundError_ErrorInterface(t *testing.T) {
	var err error = NewNotFoundError("entity not found")
	assert.NotNil(t, err)
	assert.Equal(t, "entity not found", err.Error())
}

func TestValidationError_Creation(t *testing.T) {
	message := "validation failed"
	details := []ValidationDetail{
		{Field: "email", Message: "invalid email"},
		{Field: "name", Message: "required field"},
	}

	err := NewValidationError(message, details...)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
	assert.Len(t, err.Details, 2)
}

func TestInternalError_Creation(t *testing.T) {
	cause := errors.New("database error")
	err := NewInternalError("failed to query database", cause)

	assert.NotNil(t, err)
	assert.Equal(t, "failed to query database", err.Message)
	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "failed to query database")
	assert.Contains(t, err.Error(), "database error")
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewInternalError("wrapper", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestInternalError_NilCause(t *testing.T) {
	err := NewInternalError("no cause", nil)

	assert.Equal(t, "no cause", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestCaptureError_Creation(t *testing.T) {
	cause := errors.New("empty canvas")
	err := NewCaptureError("capturing document view", cause)

	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "capturing document view")
	assert.Contains(t, err.Error(), "empty canvas")
	assert.Equal(t, cause, err.Unwrap())

	ce, ok := IsCaptureError(err)
	assert.True(t, ok)
	assert.NotNil(t, ce)
}

func TestPdfBuildError_Creation(t *testing.T) {
	cause := errors.New("bad image")
	err := NewPdfBuildError("building pdf", cause)

	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "building pdf")
	assert.Equal(t, cause, err.Unwrap())

	pe, ok := IsPdfBuildError(err)
	assert.True(t, ok)
	assert.NotNil(t, pe)
}

func TestMissingDestinationError_Creation(t *testing.T) {
	err := NewMissingDestinationError("whatsapp number not configured")

	assert.Equal(t, "whatsapp number not configured", err.Error())

	me, ok := IsMissingDestinationError(err)
	assert.True(t, ok)
	assert.NotNil(t, me)

	_, ok = IsMissingDestinationError(errors.New("other"))
	assert.False(t, ok)
}

func TestStorageUnavailableError_Creation(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorageUnavailableError("persisting bills", cause)

	assert.Contains(t, err.Error(), "persisting bills")
	assert.Equal(t, cause, err.Unwrap())

	se, ok := IsStorageUnavailableError(err)
	assert.True(t, ok)
	assert.NotNil(t, se)
}
