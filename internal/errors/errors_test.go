package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Entity: "attendance record"}
	assert.Equal(t, "attendance record not found", err.Error())

	wrapped := fmt.Errorf("loading board: %w", ErrAttendanceNotFound)
	assert.True(t, errors.Is(wrapped, ErrAttendanceNotFound))
	assert.False(t, errors.Is(wrapped, ErrMemberNotFound))
	assert.True(t, IsNotFound(wrapped))
}

func TestAlreadyExistsError(t *testing.T) {
	assert.Equal(t, "attendance record already exists for this member and date", ErrAlreadyCheckedIn.Error())
	assert.Equal(t, "session already exists", (&AlreadyExistsError{Entity: "session"}).Error())

	wrapped := fmt.Errorf("check-in: %w", ErrAlreadyCheckedIn)
	assert.True(t, errors.Is(wrapped, ErrAlreadyCheckedIn))
	assert.True(t, IsAlreadyExists(wrapped))
	assert.False(t, IsNotFound(wrapped))
}

func TestValidationError(t *testing.T) {
	withField := NewValidationError("duration_minutes", "must be positive")
	assert.Equal(t, "validation error: duration_minutes - must be positive", withField.Error())
	assert.True(t, IsValidation(withField))

	bare := &ValidationError{Message: "bad payload"}
	assert.Equal(t, "validation error: bad payload", bare.Error())
}

func TestClassificationHelpers(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.False(t, IsAuthentication(ErrWorkLogNotFound))
	assert.True(t, IsConfiguration(&ConfigurationError{Message: "missing DSN"}))
	assert.False(t, IsAlreadyExists(ErrSessionAlreadyClosed))
	assert.False(t, IsNotFound(errors.New("plain")))
}
