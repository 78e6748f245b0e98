package dough

import (
	"fmt"
	"math"
)

// =============================================================================
// Snapshot Validation
// =============================================================================

// ValidateInputs checks that a snapshot only carries values the engine
// accepts. Returns the field name and error message if validation fails.
// Returns empty strings if all fields are valid.
//
// Negative starter hydration is accepted: the starter equation resolves it to
// zero starter flour rather than rejecting the snapshot.
//
// Example:
//
//	field, msg := ValidateInputs(in)
//	if field != "" {
//	    // Return 400 Bad Request with msg
//	}
func ValidateInputs(in Inputs) (field, message string) {
	pcts := []struct {
		field string
		value float64
	}{
		{"percentages.flour", in.Percentages.Flour},
		{"percentages.water", in.Percentages.Water},
		{"percentages.salt", in.Percentages.Salt},
		{"percentages.starter", in.Percentages.Starter},
	}
	for _, p := range pcts {
		if msg := checkNonNegative(p.value); msg != "" {
			return p.field, msg
		}
	}

	if in.TotalDoughWeight < 0 {
		return "total_dough_weight", "must not be negative"
	}

	if field, msg := validateBlend(in.Blend); field != "" {
		return field, msg
	}

	if !isFinite(in.Starter.Hydration) {
		return "starter.hydration", "must be a finite number"
	}

	ratio := []struct {
		field string
		value int
	}{
		{"starter.ratio.starter", in.Starter.Ratio.Starter},
		{"starter.ratio.flour", in.Starter.Ratio.Flour},
		{"starter.ratio.water", in.Starter.Ratio.Water},
	}
	for _, r := range ratio {
		if r.value < 0 {
			return r.field, "must not be negative"
		}
	}

	if w := in.Override.Weight; w != nil {
		if *w < 0 {
			return "override.weight", "must not be negative"
		}
		if float64(*w) > maxGrams {
			return "override.weight", fmt.Sprintf("must not exceed %.0f", maxGrams)
		}
	}

	return "", ""
}

// Validate returns a *ValidationError wrapping ErrInvalidInput when the
// snapshot is rejected, nil otherwise.
func (in Inputs) Validate() error {
	if field, msg := ValidateInputs(in); field != "" {
		return NewValidationError(field, msg)
	}
	return nil
}

// ValidateBlend checks that a blend has at least one flour and that every
// share is a finite number in [0, 100].
func ValidateBlend(blend Blend) error {
	if field, msg := validateBlend(blend); field != "" {
		return NewValidationError(field, msg)
	}
	return nil
}

func validateBlend(blend Blend) (field, message string) {
	if len(blend) == 0 {
		return "blend", "must contain at least one flour"
	}
	for i, f := range blend {
		if msg := checkNonNegative(f.Percentage); msg != "" {
			return fmt.Sprintf("blend[%d].percentage", i), msg
		}
		if f.Percentage > 100 {
			return fmt.Sprintf("blend[%d].percentage", i), "must not exceed 100"
		}
	}
	return "", ""
}

func checkNonNegative(v float64) string {
	if !isFinite(v) {
		return "must be a finite number"
	}
	if v < 0 {
		return "must not be negative"
	}
	return ""
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
