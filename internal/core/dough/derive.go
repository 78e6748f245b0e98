package dough

import (
	"fmt"
	"math"
)

// =============================================================================
// Flour Basis
// =============================================================================

// FlourUnitWeight returns the direct flour basis in grams: the dough weight
// divided by the sum of all four baker's percentages, scaled to 100%.
// Starter-contributed flour is not included.
//
// Returns ErrInvalidConfiguration when the percentages sum to zero and
// ErrOutOfRange when the basis is too large to derive.
func FlourUnitWeight(in Inputs) (int, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	return flourUnitWeight(in)
}

func flourUnitWeight(in Inputs) (int, error) {
	sum := in.Percentages.Sum()
	if sum == 0 {
		return 0, ErrInvalidConfiguration
	}
	unit, err := toGrams(float64(in.TotalDoughWeight)*100/sum, "flour unit weight")
	if err != nil {
		return 0, fmt.Errorf("dough weight %d g over percentages summing to %g: %w", in.TotalDoughWeight, sum, err)
	}
	return unit, nil
}

// WeightFromPercentage returns pct percent of the direct flour basis.
// Negative percentages yield zero.
//
// Example:
//
//	WeightFromPercentage(75, 1000) // returns 750, nil
func WeightFromPercentage(pct float64, flourUnitWeight int) (int, error) {
	return percentOf(pct, flourUnitWeight, "percentage weight")
}

// percentOf returns pct percent of base in grams, never negative.
func percentOf(pct float64, base int, what string) (int, error) {
	w, err := toGrams(pct/100*float64(base), what)
	if err != nil {
		return 0, err
	}
	if w < 0 {
		return 0, nil
	}
	return w, nil
}

func directFlourWeight(in Inputs) (int, error) {
	unit, err := flourUnitWeight(in)
	if err != nil {
		return 0, err
	}
	return percentOf(in.Percentages.Flour, unit, "direct flour")
}

// TotalFlourWeight returns direct flour plus the flour carried by the
// starter. Water and salt are baker's percentages of this weight.
func TotalFlourWeight(in Inputs) (int, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	return totalFlourWeight(in)
}

func totalFlourWeight(in Inputs) (int, error) {
	df, err := directFlourWeight(in)
	if err != nil {
		return 0, err
	}
	sol, err := solveStarter(in)
	if err != nil {
		return 0, err
	}
	return sumGrams("total flour", df, sol.Flour())
}

// WeightFromBakersPercentage returns pct percent of the total flour weight.
func WeightFromBakersPercentage(pct float64, in Inputs) (int, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	if !isFinite(pct) {
		return 0, NewValidationError("percentage", "must be a finite number")
	}
	tf, err := totalFlourWeight(in)
	if err != nil {
		return 0, err
	}
	return percentOf(pct, tf, "baker's percentage weight")
}

// =============================================================================
// Starter
// =============================================================================

// starterLevain describes the snapshot's single starter as a Levain.
func starterLevain(in Inputs) Levain {
	return Levain{
		Percentage: in.Percentages.Starter,
		Hydration:  in.Starter.Hydration,
	}
}

// solveStarter solves the levain system for the snapshot's starter. The
// flour basis is only derived when the starter contributes, so a snapshot
// without starter never fails on it.
func solveStarter(in Inputs) (LevainSolution, error) {
	l := starterLevain(in)
	if !l.contributes() {
		return LevainSolution{Contents: make([]LevainContent, 1)}, nil
	}
	df, err := directFlourWeight(in)
	if err != nil {
		return LevainSolution{}, err
	}
	return SolveLevains(df, []Levain{l})
}

// StarterFlourContent returns the grams of flour inside the starter.
// It is zero when the starter percentage is not positive, the hydration is
// negative, or the equation is unstable.
func StarterFlourContent(in Inputs) (int, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	sol, err := solveStarter(in)
	if err != nil {
		return 0, err
	}
	return sol.Flour(), nil
}

// StarterWaterContent returns the grams of water inside the starter.
func StarterWaterContent(in Inputs) (int, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	sol, err := solveStarter(in)
	if err != nil {
		return 0, err
	}
	return sol.Water(), nil
}

// TotalStarterWeight returns the starter's flour plus water.
func TotalStarterWeight(in Inputs) (int, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	sol, err := solveStarter(in)
	if err != nil {
		return 0, err
	}
	return sumGrams("total starter", sol.Flour(), sol.Water())
}

// =============================================================================
// Water
// =============================================================================

// DirectWaterNeeded returns the water to add to the mix: the water target on
// the total flour basis minus what the starter already supplies. It is never
// negative.
func DirectWaterNeeded(in Inputs) (int, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	tf, err := totalFlourWeight(in)
	if err != nil {
		return 0, err
	}
	sol, err := solveStarter(in)
	if err != nil {
		return 0, err
	}
	return directWater(tf, in.Percentages.Water, sol.Water())
}

func directWater(totalFlour int, waterPct float64, starterWater int) (int, error) {
	w := float64(totalFlour)*waterPct/100 - float64(starterWater)
	return toGrams(math.Max(0, w), "direct water")
}
