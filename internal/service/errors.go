package service

import (
	"errors"
	"strings"
)

var (
	ErrValidation              = errors.New("validation failed")
	ErrDestinationNotFound     = errors.New("destination not found")
	ErrPackageNotFound         = errors.New("package not found")
	ErrUserNotFound            = errors.New("user not found")
	ErrInvalidImage            = errors.New("invalid image")
	ErrImageStorageUnavailable = errors.New("image storage is not configured")
)

// PasswordPolicyError lists every strength rule a password failed.
type PasswordPolicyError struct {
	Problems []string
}

func (e *PasswordPolicyError) Error() string {
	return ErrPasswordTooWeak.Error() + ": " + strings.Join(e.Problems, "; ")
}

func (e *PasswordPolicyError) Unwrap() error {
	return ErrPasswordTooWeak
}
