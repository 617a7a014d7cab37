package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrTotalMismatch      = errors.New("order total mismatch")
	ErrInvalidRole        = errors.New("invalid role")
	ErrConflict           = errors.New("operation conflicts with existing data")
)
