package dough

import "math"

// =============================================================================
// Aggregate Derivation
// =============================================================================

// Derive computes every derived weight of the snapshot in one pass.
//
// Returns a *ValidationError (wrapping ErrInvalidInput) for rejected values,
// ErrInvalidConfiguration when the percentages sum to zero and ErrOutOfRange
// when a weight is too large to derive. Unstable starter equations and empty
// build ratios are not errors; they resolve to zero and are listed in
// Recipe.Notices.
func Derive(in Inputs) (Recipe, error) {
	if err := in.Validate(); err != nil {
		return Recipe{}, err
	}

	unit, err := flourUnitWeight(in)
	if err != nil {
		return Recipe{}, err
	}
	directFlour, err := percentOf(in.Percentages.Flour, unit, "direct flour")
	if err != nil {
		return Recipe{}, err
	}

	starter := starterLevain(in)
	sol := LevainSolution{Contents: make([]LevainContent, 1)}
	if starter.contributes() {
		if sol, err = SolveLevains(directFlour, []Levain{starter}); err != nil {
			return Recipe{}, err
		}
	}
	starterFlour := sol.Flour()
	starterWater := sol.Water()

	r := Recipe{
		FlourUnitWeight: unit,
		DirectFlour:     directFlour,
		Flours:          make([]FlourWeight, 0, len(in.Blend)),
		BlendTotal:      in.Blend.Total(),
		StarterFlour:    starterFlour,
		StarterWater:    starterWater,
		TargetTotal:     in.TotalDoughWeight,
	}

	if r.TotalStarter, err = sumGrams("total starter", starterFlour, starterWater); err != nil {
		return Recipe{}, err
	}
	if r.TotalFlour, err = sumGrams("total flour", directFlour, starterFlour); err != nil {
		return Recipe{}, err
	}
	if r.TotalWater, err = percentOf(in.Percentages.Water, r.TotalFlour, "total water"); err != nil {
		return Recipe{}, err
	}
	if r.DirectWater, err = directWater(r.TotalFlour, in.Percentages.Water, starterWater); err != nil {
		return Recipe{}, err
	}
	if r.Salt, err = percentOf(in.Percentages.Salt, r.TotalFlour, "salt"); err != nil {
		return Recipe{}, err
	}

	for _, f := range in.Blend {
		weight, err := percentOf(f.Percentage/100*in.Percentages.Flour, unit, "blend flour")
		if err != nil {
			return Recipe{}, err
		}
		r.Flours = append(r.Flours, FlourWeight{
			Name:       f.Name,
			Percentage: f.Percentage,
			Weight:     weight,
		})
	}

	r.EffectiveStarter = r.TotalStarter
	if in.Override.Active() {
		r.EffectiveStarter = *in.Override.Weight
	}
	r.Build = SplitBuild(in.Starter.Ratio, r.EffectiveStarter)
	if r.CalculatedTotal, err = sumGrams("calculated total", r.DirectFlour, r.DirectWater, r.TotalStarter, r.Salt); err != nil {
		return Recipe{}, err
	}

	if sol.Unstable {
		r.Notices = append(r.Notices, NoticeUnstableStarter)
	}
	if in.Starter.Ratio.Sum() == 0 {
		r.Notices = append(r.Notices, NoticeEmptyRatio)
	}
	if math.Abs(r.BlendTotal-100) > 1e-9 {
		r.Notices = append(r.Notices, NoticeBlendNotFull)
	}

	return r, nil
}
