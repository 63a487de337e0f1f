package service

import (
	"errors"
	"regexp"
	"strings"
)

const EmailMaxLen = 255

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var (
	errEmailInvalidLen    = errors.New("email length exceeds 255 characters")
	errEmailInvalidFormat = errors.New("incorrect email format")
)

func ValidateEmail(email string) error {
	if len(email) > EmailMaxLen {
		return errEmailInvalidLen
	}

	if !emailRegexp.MatchString(email) || strings.Contains(email, "..") {
		return errEmailInvalidFormat
	}

	return nil
}
