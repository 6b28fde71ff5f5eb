package services

import "errors"

var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
