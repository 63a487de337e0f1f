package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

type OtpPurpose string

const (
	OtpPurposeSignup OtpPurpose = "signup"
	OtpPurposeReset  OtpPurpose = "reset"
)

func ParseOtpPurpose(s string) (OtpPurpose, error) {
	purpose := OtpPurpose(strings.ToLower(strings.TrimSpace(s)))

	switch purpose {
	case OtpPurposeSignup, OtpPurposeReset:
		return purpose, nil
	default:
		return "", fmt.Errorf("%w: unknown otp type %q", ErrOtpPurposeInvalid, s)
	}
}

func (p OtpPurpose) Subject() string {
	if p == OtpPurposeSignup {
		return "Email Verification OTP"
	}

	return "Password Reset OTP"
}

func (p OtpPurpose) Heading() string {
	if p == OtpPurposeSignup {
		return "Email Verification"
	}

	return "Password Reset"
}

type Otp struct {
	ID        uuid.UUID
	Email     string
	CodeHash  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (o *Otp) Validate(now time.Time) error {
	if o.ExpiresAt.Before(now) {
		return ErrOtpExpired
	}

	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
