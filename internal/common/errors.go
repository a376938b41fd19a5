// Package common defines shared constants and sentinel errors used across
// the alumni core. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors. Read paths treat ErrorNotFound as an empty
	// result, not a failure.
	ErrorNotFound = errors.New("not found")

	// User store errors.
	ErrorDuplicateEmail = errors.New("email already registered")
	ErrorValidation     = errors.New("validation error")

	// Session errors. Deliberately generic so a caller cannot tell whether
	// the email or the password was wrong.
	ErrorInvalidCredentials = errors.New("invalid email or password")

	// Message store errors.
	ErrorEmptyMessage = errors.New("message text is empty")

	// Generic/internal flow control.
	ErrorInternal = errors.New("internal error")
)
