package dough

// =============================================================================
// Starter Build
// =============================================================================

// EffectiveStarterWeight returns the starter weight the build targets: the
// manual override while auto-fill is off, the computed starter otherwise.
func EffectiveStarterWeight(in Inputs) (int, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	return effectiveStarterWeight(in)
}

func effectiveStarterWeight(in Inputs) (int, error) {
	if in.Override.Active() {
		return *in.Override.Weight, nil
	}
	sol, err := solveStarter(in)
	if err != nil {
		return 0, err
	}
	return sumGrams("total starter", sol.Flour(), sol.Water())
}

// StarterBuildQuantities splits the effective starter weight across the
// build ratio. The dough's own water and flour accounting never uses the
// override; only this build does.
func StarterBuildQuantities(in Inputs) (BuildQuantities, error) {
	if err := in.Validate(); err != nil {
		return BuildQuantities{}, err
	}
	target, err := effectiveStarterWeight(in)
	if err != nil {
		return BuildQuantities{}, err
	}
	return SplitBuild(in.Starter.Ratio, target), nil
}

// SplitBuild divides target grams proportionally to the ratio parts. Each
// part is rounded on its own and the drift is left in place. An all-zero
// ratio yields all-zero quantities.
//
// Example:
//
//	SplitBuild(BuildRatio{Starter: 1, Flour: 2, Water: 2}, 500)
//	// Result: BuildQuantities{Starter: 100, Flour: 200, Water: 200}
func SplitBuild(ratio BuildRatio, target int) BuildQuantities {
	total := ratio.Sum()
	if total <= 0 {
		return BuildQuantities{}
	}
	part := func(n int) int {
		return roundGrams(float64(n) / float64(total) * float64(target))
	}
	return BuildQuantities{
		Starter: part(ratio.Starter),
		Flour:   part(ratio.Flour),
		Water:   part(ratio.Water),
	}
}
