package dough

import (
	"fmt"
	"math"
)

// =============================================================================
// Blend Editing
// =============================================================================

// SetBlendPercentage sets the share of one flour and redistributes the rest
// of the 100% over the other flours, proportionally to their current shares.
// When the others are all at zero the remainder is split equally. The value
// is clamped to [0, 100] and every redistributed share is rounded to one
// decimal place, so the total may drift from 100 by a few tenths.
//
// The incoming shares must pass ValidateBlend.
//
// Example:
//
//	blend := Blend{{Name: "Bread", Percentage: 80}, {Name: "Rye", Percentage: 20}}
//	next, _ := SetBlendPercentage(blend, 0, 60)
//	// Result: Bread 60, Rye 40
func SetBlendPercentage(blend Blend, index int, value float64) (Blend, error) {
	if index < 0 || index >= len(blend) {
		return blend.Clone(), fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	if err := ValidateBlend(blend); err != nil {
		return blend.Clone(), err
	}
	if math.IsNaN(value) {
		return blend.Clone(), NewValidationError(fmt.Sprintf("blend[%d].percentage", index), "must be a finite number")
	}

	next := blend.Clone()
	value = math.Max(0, math.Min(100, value))
	next[index].Percentage = value

	remaining := 100 - value
	others := len(next) - 1
	if others == 0 {
		return next, nil
	}

	otherTotal := 0.0
	for i, f := range next {
		if i != index {
			otherTotal += f.Percentage
		}
	}

	for i := range next {
		if i == index {
			continue
		}
		if otherTotal > 0 {
			next[i].Percentage = roundTenth(next[i].Percentage / otherTotal * remaining)
		} else {
			next[i].Percentage = roundTenth(remaining / float64(others))
		}
	}

	return next, nil
}

// AddFlour appends a flour at NewFlourShare, taken from the base flour only.
// The base flour never drops below zero and no other flour is touched.
func AddFlour(blend Blend) Blend {
	next := blend.Clone()
	if len(next) > 0 {
		next[0].Percentage = math.Max(0, next[0].Percentage-NewFlourShare)
	}
	return append(next, FlourEntry{Name: NewFlourName, Percentage: NewFlourShare})
}

// RemoveFlour drops the flour at index. A removed flour's share goes back to
// the base flour (capped at 100). When the base flour itself is removed the
// next flour becomes the base and absorbs whatever the remaining flours leave
// unaccounted for.
//
// Removing the only flour is refused with ErrLastFlour and the blend is
// returned unchanged.
func RemoveFlour(blend Blend, index int) (Blend, error) {
	if len(blend) <= 1 {
		return blend.Clone(), ErrLastFlour
	}
	if index < 0 || index >= len(blend) {
		return blend.Clone(), fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	if err := ValidateBlend(blend); err != nil {
		return blend.Clone(), err
	}

	removed := blend[index]
	next := make(Blend, 0, len(blend)-1)
	next = append(next, blend[:index]...)
	next = append(next, blend[index+1:]...)

	if index != 0 {
		next[0].Percentage = math.Min(100, next[0].Percentage+removed.Percentage)
		return next, nil
	}

	sum := 0.0
	for _, f := range next {
		sum += f.Percentage
	}
	if unaccounted := 100 - sum; unaccounted > 0 {
		next[0].Percentage = math.Min(100, next[0].Percentage+unaccounted)
	}
	return next, nil
}

// RenameFlour changes the name of the flour at index.
func RenameFlour(blend Blend, index int, name string) (Blend, error) {
	if index < 0 || index >= len(blend) {
		return blend.Clone(), fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	next := blend.Clone()
	next[index].Name = name
	return next, nil
}
