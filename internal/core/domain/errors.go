package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrProfileExists      = errors.New("profile already exists")
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrForbidden          = errors.New("access forbidden")
)
