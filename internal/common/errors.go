// Package common defines shared constants and sentinel errors used across
// the organizer's components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors (empty required field, bad money value, reserved
	// delimiter in a path). Raised before any side effect.
	ErrorValidation = errors.New("validation error")

	// Auth errors.
	ErrorUnauthorized = errors.New("unauthorized")

	// Delivery cannot proceed without a complete email configuration.
	ErrorConfigMissing = errors.New("email configuration missing")
)
