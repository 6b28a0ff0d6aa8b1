package model

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors used across the application
var (
	// Participant errors
	ErrNameTaken           = errors.New("participant name already taken")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrRecipientNotFound   = errors.New("recipient not found")

	// Message errors
	ErrMessageNotFound  = errors.New("message not found")
	ErrInvalidMessageID = errors.New("invalid message id")
	ErrNotMessageOwner  = errors.New("not the message owner")
)

// ValidationError reports every input field that failed schema validation,
// not just the first one.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid fields: %s", strings.Join(e.Fields, ", "))
}

// NewValidationError creates a ValidationError for the given fields
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
