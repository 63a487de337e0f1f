package entity

import (
	"errors"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrReportNotFound       = errors.New("report not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

var (
	ErrOtpInvalid        = errors.New("invalid otp")
	ErrOtpExpired        = errors.New("otp expired")
	ErrOtpPurposeInvalid = errors.New("invalid otp purpose")
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrEmpIDTaken         = errors.New("employee id already registered")
	ErrEmailNotRegistered = errors.New("email not registered")
	ErrRoleInvalid        = errors.New("invalid role")
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrForbidden          = errors.New("forbidden")
)

var (
	ErrImageTooLarge    = errors.New("profile image too large")
	ErrImageUnsupported = errors.New("unsupported profile image type")
)

// ValidationError carries a message meant for the API caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
