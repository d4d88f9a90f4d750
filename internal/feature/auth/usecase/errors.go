// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the phone, email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when the phone or email is already registered.
	ErrUserAlreadyExists = errors.New("phone or email already registered")

	// ErrCredentialRequired is returned when login has neither phone nor email.
	ErrCredentialRequired = errors.New("phone or email required")

	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDisabled is returned when a disabled user tries to log in.
	ErrAccountDisabled = errors.New("account disabled")

	// ErrInvalidRole is returned for roles other than user and admin.
	ErrInvalidRole = errors.New("invalid role")

	// ErrWeakPassword is returned when a password is shorter than minPasswordLength.
	ErrWeakPassword = errors.New("password too short")

	// ErrInvalidOrExpiredOTP is returned when no unexpired reset code matches.
	ErrInvalidOrExpiredOTP = errors.New("invalid or expired OTP")

	// ErrTooManyResetRequests is returned when a phone exceeds the reset request limit.
	ErrTooManyResetRequests = errors.New("too many password reset requests")
)
