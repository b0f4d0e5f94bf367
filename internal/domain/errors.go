package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Registration errors
	ErrMsgDuplicateID   = "duplicate item id"
	ErrMsgDuplicateName = "duplicate display name"
	ErrMsgInvalidName   = "invalid display name"
	ErrMsgInvalidID     = "invalid item id"
	ErrMsgSealed        = "registry is sealed"

	// Lookup errors
	ErrMsgNotFound = "item not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrDuplicateID   = errors.New(ErrMsgDuplicateID)
	ErrDuplicateName = errors.New(ErrMsgDuplicateName)
	ErrInvalidName   = errors.New(ErrMsgInvalidName)
	ErrInvalidID     = errors.New(ErrMsgInvalidID)
	ErrSealed        = errors.New(ErrMsgSealed)

	ErrNotFound = errors.New(ErrMsgNotFound)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
