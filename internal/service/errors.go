package service

import "errors"

var (
	// ErrValidation covers rejected input: empty required fields, no target
	// roles, unknown priorities. The operation performs no mutation.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidOTP is returned when the login one-time password does not
	// match the configured literal.
	ErrInvalidOTP = errors.New("invalid OTP")
	// ErrInvalidRole is returned for a role outside the known enum.
	ErrInvalidRole = errors.New("invalid role")
	// ErrSelfDelete is returned when a user tries to delete their own account.
	ErrSelfDelete = errors.New("cannot delete self")
)
