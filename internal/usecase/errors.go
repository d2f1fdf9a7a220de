package usecase

import "errors"

// Sentinel errors for the failure taxonomy. Services wrap these with
// fmt.Errorf("...: %w", ...) and handlers map them to status codes with
// errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidOTP         = errors.New("invalid or used OTP")
	ErrInvalidAirport     = errors.New("invalid airport code")
	ErrSameRoute          = errors.New("source and destination cannot be same")
	ErrInsufficientSeats  = errors.New("not enough seats available")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
)
