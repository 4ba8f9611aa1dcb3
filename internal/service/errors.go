package service

import "errors"

var (
	ErrDuplicateEmail     = errors.New("this email is already registered")
	ErrInvalidCredentials = errors.New("wrong email or password")
	ErrNotFound           = errors.New("not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidInput       = errors.New("invalid input")
)
