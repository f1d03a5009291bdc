package models

import "errors"

// Common errors used throughout the application
var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrClassNotFound     = errors.New("class not found")
	ErrClassFull         = errors.New("class is fully booked")
	ErrUnauthorized      = errors.New("unauthorized access")
	ErrInvalidInput      = errors.New("invalid input")
	ErrBackendUnavailable = errors.New("backend unavailable")
)
