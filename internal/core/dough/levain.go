package dough

// =============================================================================
// Levain System
// =============================================================================

// StabilityThreshold is the smallest effective denominator the levain
// equation accepts. At or below it the starter share has caught up with the
// hydration-adjusted flour basis and the solution diverges.
const StabilityThreshold = 0.01

// Levain is one starter added to the dough.
type Levain struct {
	// Percentage is the levain weight as a baker's percentage of total flour,
	// starter-contributed flour included.
	Percentage float64

	// Hydration is the levain's water as a percentage of its flour.
	Hydration float64
}

// contributes reports whether the levain adds anything to the dough.
func (l Levain) contributes() bool {
	return l.Percentage > 0 && l.Hydration >= 0
}

// share is the levain weight fraction of total flour.
func (l Levain) share() float64 {
	return l.Percentage / 100
}

// multiplier is the levain weight per unit of levain flour.
func (l Levain) multiplier() float64 {
	return 1 + l.Hydration/100
}

// LevainContent is the flour and water one levain brings into the dough.
type LevainContent struct {
	Flour int
	Water int
}

// LevainSolution is the result of SolveLevains. Contents is index-aligned
// with the levains passed in.
type LevainSolution struct {
	Contents []LevainContent
	Unstable bool
}

// Flour returns the flour contributed by all levains.
func (s LevainSolution) Flour() int {
	total := 0
	for _, c := range s.Contents {
		total += c.Flour
	}
	return total
}

// Water returns the water contributed by all levains.
func (s LevainSolution) Water() int {
	total := 0
	for _, c := range s.Contents {
		total += c.Water
	}
	return total
}

// SolveLevains resolves the circular dependency between levain size and
// total flour for any number of levains.
//
// Each levain i is s_i of total flour TF and carries SF_i = s_i*TF/H_i of
// flour, where H_i = 1 + hydration_i/100. Since TF = DF + sum(SF_i), the
// linear system has the closed form
//
//	SF_i = s_i*DF / (H_i - s_i - H_i*sum_{j!=i}(s_j/H_j))
//
// which for a single levain is SF = s*DF/(H - s). Levains with a
// non-positive percentage or negative hydration contribute nothing. When any
// effective denominator is at or below StabilityThreshold the whole system is
// reported unstable and every contribution is zero. A contribution too large
// to derive fails with ErrOutOfRange.
//
// Example:
//
//	sol, err := SolveLevains(1015, []Levain{{Percentage: 20, Hydration: 100}})
//	// Result: sol.Contents[0] == LevainContent{Flour: 113, Water: 113}
func SolveLevains(directFlour int, levains []Levain) (LevainSolution, error) {
	sol := LevainSolution{Contents: make([]LevainContent, len(levains))}

	denominators := make([]float64, len(levains))
	for i, l := range levains {
		if !l.contributes() {
			continue
		}
		others := 0.0
		for j, o := range levains {
			if j == i || !o.contributes() {
				continue
			}
			others += o.share() / o.multiplier()
		}
		h := l.multiplier()
		d := h - l.share() - h*others
		if d <= StabilityThreshold {
			return LevainSolution{
				Contents: make([]LevainContent, len(levains)),
				Unstable: true,
			}, nil
		}
		denominators[i] = d
	}

	for i, l := range levains {
		if !l.contributes() {
			continue
		}
		flour, err := toGrams((l.share()*float64(directFlour))/denominators[i], "starter flour")
		if err != nil {
			return LevainSolution{}, err
		}
		if flour < 0 {
			flour = 0
		}
		water, err := toGrams(float64(flour)*(l.Hydration/100), "starter water")
		if err != nil {
			return LevainSolution{}, err
		}
		sol.Contents[i] = LevainContent{Flour: flour, Water: water}
	}

	if _, err := sumGrams("starter flour", sol.Flour()); err != nil {
		return LevainSolution{}, err
	}
	if _, err := sumGrams("starter water", sol.Water()); err != nil {
		return LevainSolution{}, err
	}
	return sol, nil
}
