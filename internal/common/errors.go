// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Configuration errors.
	ErrMissingBaseURL     = errors.New("api base url is not configured")
	ErrCollectionRequired = errors.New("collection id is required")
	ErrMissingConfig      = errors.New("missing configuration")

	// Craft API errors.
	ErrUnauthorized  = errors.New("craft api unauthorized")
	ErrNotFound      = errors.New("craft api resource not found")
	ErrNoCollections = errors.New("no collections found")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
