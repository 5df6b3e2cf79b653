package services

import "errors"

// Domain rule violations. Controllers map these to 4xx responses.
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnknownRole          = errors.New("unknown role")
	ErrUnknownStatus        = errors.New("unknown status")
	ErrUnknownBoxSize       = errors.New("unknown box size")
	ErrUnknownCommune       = errors.New("unknown commune")
	ErrMissingFailureReason = errors.New("failure reason is required when marking an order failed")
	ErrDriverNotFound       = errors.New("driver not found")
	ErrEmailTaken           = errors.New("email already in use")
)
