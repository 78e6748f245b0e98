package dough

import (
	"fmt"
	"math"
)

// maxGrams is the largest weight the engine derives. Every derived weight
// and every total is checked against it before it becomes an int.
const maxGrams = float64(math.MaxInt32)

// roundGrams rounds half up to a whole gram. For the non-negative values the
// engine produces this is the same as math.Round.
func roundGrams(v float64) int {
	return int(math.Floor(v + 0.5))
}

// roundTenth rounds half up to one decimal place.
func roundTenth(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// toGrams rounds v to whole grams. Non-finite values and values beyond
// maxGrams in either direction fail with ErrOutOfRange.
func toGrams(v float64, what string) (int, error) {
	if !isFinite(v) || math.Abs(v) > maxGrams {
		return 0, fmt.Errorf("%w: %s is %g g, limit is %.0f g", ErrOutOfRange, what, v, maxGrams)
	}
	return roundGrams(v), nil
}

// sumGrams adds derived weights, failing with ErrOutOfRange when the total
// passes maxGrams.
func sumGrams(what string, parts ...int) (int, error) {
	total := 0.0
	for _, p := range parts {
		total += float64(p)
	}
	return toGrams(total, what)
}
