package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrStoreUnavailable   = errors.New("account store unavailable")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrFoodNotFound       = errors.New("food not found")
	ErrSetupCodeMismatch  = errors.New("setup code mismatch")
	ErrDatabaseError      = errors.New("database error")

	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenBadSignature = errors.New("token signature invalid")
	ErrTokenExpired      = errors.New("token expired")
)
