package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrInvalidArgument covers malformed method names, out-of-range
	// levels/credible masses, and a credible mass requesting a wider
	// window than the sample can provide.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientData is returned when an estimator is invoked directly
	// with a sample too small for its statistics (length < 2).
	ErrInsufficientData = errors.New("insufficient data for inference")
)

// Error constructors with context
func NewInvalidArgumentError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, reason)
}

func NewInsufficientDataError(n int) error {
	return fmt.Errorf("%w: need at least 2 observations, got %d", ErrInsufficientData, n)
}

// Error checking helpers
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsInsufficientData(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}
