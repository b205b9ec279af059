package service

import (
	"errors"
)

// --- Error Definitions ---
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError reports a rejected input field. It matches
// ErrValidationFailed under errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
