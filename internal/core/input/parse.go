// Package input turns raw form text into engine values.
//
// The calculator's form fields are forgiving: a blank or unreadable field
// counts as zero while the user is still typing. That policy lives here, at
// the boundary, so package dough only ever sees numbers.
// All functions are pure.
package input

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/artpar/doughcalc/internal/core/dough"
)

var (
	numberPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	wholePrefix  = regexp.MustCompile(`^[+-]?\d+`)
)

// =============================================================================
// Field Parsers
// =============================================================================

// ParseNumber reads a decimal field. Leading numeric text is used and the
// rest ignored; anything unreadable, blank or non-finite is 0.
//
// Example:
//
//	ParseNumber("72.5")  // returns 72.5
//	ParseNumber("")      // returns 0
//	ParseNumber("12abc") // returns 12
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return finiteOrZero(v)
	}
	prefix := numberPrefix.FindString(s)
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(v)
}

// ParseWhole reads an integer field, truncating any fractional part.
// Anything unreadable or blank is 0.
//
// Example:
//
//	ParseWhole("2000")  // returns 2000
//	ParseWhole("12.7")  // returns 12
//	ParseWhole("grams") // returns 0
func ParseWhole(raw string) int {
	prefix := wholePrefix.FindString(strings.TrimSpace(raw))
	if prefix == "" {
		return 0
	}
	v, err := strconv.Atoi(prefix)
	if err != nil {
		return 0
	}
	return v
}

// ParseBlendShare reads a flour share. Thousands separators are dropped and
// the value is clamped to [0, 100].
func ParseBlendShare(raw string) float64 {
	v := ParseNumber(strings.ReplaceAll(raw, ",", ""))
	return math.Max(0, math.Min(100, v))
}

// ParseOverride reads the manual starter weight. A blank field means no
// override and returns nil.
func ParseOverride(raw string) *int {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	v := ParseWhole(raw)
	return &v
}

// ParseFlag reads a checkbox-style field.
func ParseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// =============================================================================
// Form Application
// =============================================================================

// Form field names.
const (
	FieldTotalDoughWeight    = "total_dough_weight"
	FieldFlour               = "flour"
	FieldWater               = "water"
	FieldSalt                = "salt"
	FieldStarter             = "starter"
	FieldStarterHydration    = "starter_hydration"
	FieldRatioStarter        = "ratio_starter"
	FieldRatioFlour          = "ratio_flour"
	FieldRatioWater          = "ratio_water"
	FieldManualStarterWeight = "manual_starter_weight"
	FieldAutoFill            = "auto_fill"
)

// Form holds raw field text keyed by field name. Fields that are absent keep
// their value from the base snapshot.
type Form map[string]string

// Apply returns the snapshot produced by applying the form to base.
//
// A manual starter weight turns auto-fill off and a blank one clears it.
// auto_fill=true is applied last and wins over a manual weight.
func Apply(base dough.Inputs, form Form) dough.Inputs {
	next := base.Clone()

	if raw, ok := form[FieldTotalDoughWeight]; ok {
		next.TotalDoughWeight = ParseWhole(raw)
	}

	numbers := map[string]*float64{
		FieldFlour:            &next.Percentages.Flour,
		FieldWater:            &next.Percentages.Water,
		FieldSalt:             &next.Percentages.Salt,
		FieldStarter:          &next.Percentages.Starter,
		FieldStarterHydration: &next.Starter.Hydration,
	}
	for field, dst := range numbers {
		if raw, ok := form[field]; ok {
			*dst = ParseNumber(raw)
		}
	}

	wholes := map[string]*int{
		FieldRatioStarter: &next.Starter.Ratio.Starter,
		FieldRatioFlour:   &next.Starter.Ratio.Flour,
		FieldRatioWater:   &next.Starter.Ratio.Water,
	}
	for field, dst := range wholes {
		if raw, ok := form[field]; ok {
			*dst = ParseWhole(raw)
		}
	}

	if raw, ok := form[FieldManualStarterWeight]; ok {
		if w := ParseOverride(raw); w != nil {
			next = dough.SetManualStarterWeight(next, *w)
		} else {
			next = dough.ClearManualStarterWeight(next)
		}
	}

	if raw, ok := form[FieldAutoFill]; ok && ParseFlag(raw) {
		next = dough.EnableAutoFill(next)
	}

	return next
}
