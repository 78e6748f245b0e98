package dough

// =============================================================================
// Snapshot Types
// =============================================================================

// Percentages holds the baker's percentages of the dough. Flour is
// conventionally 100 but any non-negative value is accepted.
type Percentages struct {
	Flour   float64
	Water   float64
	Salt    float64
	Starter float64
}

// Sum returns the flour-equivalent total percentage.
func (p Percentages) Sum() float64 {
	return p.Flour + p.Water + p.Salt + p.Starter
}

// FlourEntry is one flour of the blend. Percentage is its share of the total
// flour component, not of the dough.
type FlourEntry struct {
	Name       string
	Percentage float64
}

// Blend is the ordered list of flours. The first entry is the base flour.
type Blend []FlourEntry

// Clone returns a copy that does not share backing storage.
func (b Blend) Clone() Blend {
	if b == nil {
		return nil
	}
	out := make(Blend, len(b))
	copy(out, b)
	return out
}

// Total returns the sum of all shares rounded to one decimal place.
func (b Blend) Total() float64 {
	sum := 0.0
	for _, f := range b {
		sum += f.Percentage
	}
	return roundTenth(sum)
}

// BuildRatio is the starter:flour:water feeding ratio in relative parts.
type BuildRatio struct {
	Starter int
	Flour   int
	Water   int
}

// Sum returns the total number of parts.
func (r BuildRatio) Sum() int {
	return r.Starter + r.Flour + r.Water
}

// StarterConfig describes the levain: its hydration in percent and the ratio
// used to build it.
type StarterConfig struct {
	Hydration float64
	Ratio     BuildRatio
}

// StarterOverride holds a manually entered starter weight. It only applies to
// the build calculation, and only while AutoFill is off.
type StarterOverride struct {
	Weight   *int
	AutoFill bool
}

// Active reports whether the manual weight supersedes the computed one.
func (o StarterOverride) Active() bool {
	return o.Weight != nil && !o.AutoFill
}

// Inputs is the complete snapshot every derivation reads.
type Inputs struct {
	Percentages      Percentages
	Blend            Blend
	Starter          StarterConfig
	Override         StarterOverride
	TotalDoughWeight int
}

// Clone returns a deep copy of the snapshot.
func (in Inputs) Clone() Inputs {
	out := in
	out.Blend = in.Blend.Clone()
	if in.Override.Weight != nil {
		w := *in.Override.Weight
		out.Override.Weight = &w
	}
	return out
}

// =============================================================================
// Result Types
// =============================================================================

// BuildQuantities are the grams of existing starter, fresh flour and fresh
// water needed to build the levain.
type BuildQuantities struct {
	Starter int
	Flour   int
	Water   int
}

// Total returns the sum of the three parts. Parts are rounded independently
// so the total may differ from the target by a gram or two.
func (q BuildQuantities) Total() int {
	return q.Starter + q.Flour + q.Water
}

// FlourWeight is the weight of one flour of the blend.
type FlourWeight struct {
	Name       string
	Percentage float64
	Weight     int
}

// Recipe is the full set of derived weights for one snapshot.
type Recipe struct {
	FlourUnitWeight  int
	DirectFlour      int
	Flours           []FlourWeight
	BlendTotal       float64
	TotalFlour       int
	TotalWater       int
	DirectWater      int
	StarterFlour     int
	StarterWater     int
	TotalStarter     int
	Salt             int
	EffectiveStarter int
	Build            BuildQuantities
	CalculatedTotal  int
	TargetTotal      int
	Notices          []Notice
}

// HasNotice reports whether the derivation raised the given notice.
func (r Recipe) HasNotice(n Notice) bool {
	for _, got := range r.Notices {
		if got == n {
			return true
		}
	}
	return false
}

// =============================================================================
// Defaults
// =============================================================================

const (
	// DefaultFlourName is the name of the base flour in a fresh snapshot.
	DefaultFlourName = "Bread Flour"

	// NewFlourName is the name given to flours added to a blend.
	NewFlourName = "New Flour"

	// NewFlourShare is the share a newly added flour takes from the base flour.
	NewFlourShare = 20.0
)

// DefaultInputs returns the snapshot a new editing session starts from.
func DefaultInputs() Inputs {
	return Inputs{
		Percentages: Percentages{
			Flour:   100,
			Water:   75,
			Salt:    2,
			Starter: 20,
		},
		Blend: Blend{
			{Name: DefaultFlourName, Percentage: 100},
		},
		Starter: StarterConfig{
			Hydration: 100,
			Ratio:     BuildRatio{Starter: 1, Flour: 1, Water: 1},
		},
		Override:         StarterOverride{AutoFill: true},
		TotalDoughWeight: 2000,
	}
}
