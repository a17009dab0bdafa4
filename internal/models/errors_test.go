package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestAppErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "validation error enumerates fields",
			err:      NewValidationError("Invalid field value(s)", "email", "password"),
			expected: "Invalid field value(s) (email, password)",
		},
		{
			name:     "constraint violation carries cause",
			err:      NewConstraintViolation(errors.New("UNIQUE constraint failed")),
			expected: "Storage constraint violated: UNIQUE constraint failed",
		},
		{
			name:     "not found names resource and id",
			err:      NewNotFoundError("Post", 7),
			expected: "Post with ID 7 not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	validation := NewValidationError("bad input", "email")
	constraint := NewConstraintViolation(errors.New("dup"))
	notFound := NewNotFoundError("Account", 1)

	assert.True(t, IsValidationError(validation))
	assert.False(t, IsValidationError(constraint))

	assert.True(t, IsConstraintViolation(constraint))
	assert.False(t, IsConstraintViolation(validation))

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(validation))

	// Predicates see through wrapping.
	wrapped := fmt.Errorf("create account: %w", constraint)
	assert.True(t, IsConstraintViolation(wrapped))
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation maps to 400", NewValidationError("bad", "email"), fiber.StatusBadRequest},
		{"constraint maps to 409", NewConstraintViolation(errors.New("dup")), fiber.StatusConflict},
		{"not found maps to 404", NewNotFoundError("Post", 1), fiber.StatusNotFound},
		{"unauthorized maps to 403", NewUnauthorizedError("not yours"), fiber.StatusForbidden},
		{"unknown maps to 500", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusForError(tt.err))
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewInternalError(cause)
	assert.ErrorIs(t, err, cause)
}
