package dough

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrInvalidConfiguration is returned when the baker's percentages sum to
	// zero and no flour basis can be derived.
	ErrInvalidConfiguration = errors.New("invalid configuration: percentages sum to zero")

	// ErrInvalidInput is returned when a snapshot carries a value the engine
	// does not accept (NaN, infinity, negative weight or percentage).
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfRange is returned when a derived weight would exceed what the
	// engine can represent in whole grams.
	ErrOutOfRange = errors.New("derived weight out of range")

	// Blend editing errors
	ErrIndexOutOfRange = errors.New("flour index out of range")
	ErrLastFlour       = errors.New("blend must keep at least one flour")
)

// ValidationError describes which field of a snapshot was rejected.
type ValidationError struct {
	Field   string // e.g., "percentages.water", "blend[1].percentage"
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// =============================================================================
// Notices
// =============================================================================

// Notice flags a degraded but recoverable state of a derivation. The affected
// values resolve to zero; the notice lets the presentation layer say why.
type Notice string

const (
	// NoticeUnstableStarter means the starter percentage is too close to the
	// hydration-adjusted denominator to solve for starter flour.
	NoticeUnstableStarter Notice = "unstable_starter_equation"

	// NoticeEmptyRatio means every part of the build ratio is zero.
	NoticeEmptyRatio Notice = "empty_build_ratio"

	// NoticeBlendNotFull means the blend shares do not add up to 100%.
	NoticeBlendNotFull Notice = "blend_not_full"
)
