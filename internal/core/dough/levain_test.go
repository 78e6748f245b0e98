package dough

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solve(t *testing.T, directFlour int, levains []Levain) LevainSolution {
	t.Helper()
	sol, err := SolveLevains(directFlour, levains)
	require.NoError(t, err)
	return sol
}

// =============================================================================
// SolveLevains Tests
// =============================================================================

func TestSolveLevains_Empty(t *testing.T) {
	sol := solve(t, 1000, nil)
	assert.Empty(t, sol.Contents)
	assert.False(t, sol.Unstable)
	assert.Equal(t, 0, sol.Flour())
	assert.Equal(t, 0, sol.Water())
}

func TestSolveLevains_SingleMatchesClosedForm(t *testing.T) {
	sol := solve(t, 1015, []Levain{{Percentage: 20, Hydration: 100}})

	assert.False(t, sol.Unstable)
	assert.Equal(t, LevainContent{Flour: 113, Water: 113}, sol.Contents[0])
}

func TestSolveLevains_SingleSelfConsistent(t *testing.T) {
	// The levain must be its percentage of the flour it helped make up.
	sol := solve(t, 10000, []Levain{{Percentage: 30, Hydration: 80}})
	c := sol.Contents[0]

	totalFlour := 10000 + c.Flour
	levain := c.Flour + c.Water
	assert.InDelta(t, 0.30*float64(totalFlour), float64(levain), 2)
}

func TestSolveLevains_TwoLevainsSelfConsistent(t *testing.T) {
	levains := []Levain{
		{Percentage: 15, Hydration: 100}, // liquid levain
		{Percentage: 10, Hydration: 50},  // stiff levain
	}
	sol := solve(t, 10000, levains)
	assert.False(t, sol.Unstable)

	totalFlour := 10000 + sol.Flour()
	for i, l := range levains {
		c := sol.Contents[i]
		assert.InDelta(t, l.Percentage/100*float64(totalFlour), float64(c.Flour+c.Water), 2, "levain %d", i)
		assert.Equal(t, roundGrams(float64(c.Flour)*l.Hydration/100), c.Water)
	}
}

func TestSolveLevains_InactiveLevainIgnored(t *testing.T) {
	single := solve(t, 1015, []Levain{{Percentage: 20, Hydration: 100}})
	mixed := solve(t, 1015, []Levain{
		{Percentage: 20, Hydration: 100},
		{Percentage: 0, Hydration: 100},
		{Percentage: 10, Hydration: -5},
	})

	assert.Equal(t, single.Contents[0], mixed.Contents[0])
	assert.Equal(t, LevainContent{}, mixed.Contents[1])
	assert.Equal(t, LevainContent{}, mixed.Contents[2])
}

func TestSolveLevains_UnstableZeroesEverything(t *testing.T) {
	sol := solve(t, 1000, []Levain{
		{Percentage: 20, Hydration: 100},
		{Percentage: 190, Hydration: 100},
	})

	assert.True(t, sol.Unstable)
	assert.Len(t, sol.Contents, 2)
	assert.Equal(t, 0, sol.Flour())
	assert.Equal(t, 0, sol.Water())
}

func TestSolveLevains_ThresholdBoundary(t *testing.T) {
	tests := []struct {
		name      string
		pct       float64
		hydration float64
		unstable  bool
	}{
		{name: "well below", pct: 20, hydration: 100, unstable: false},
		{name: "near but stable", pct: 198, hydration: 100, unstable: false},
		{name: "at zero", pct: 200, hydration: 100, unstable: true},
		{name: "past singular", pct: 300, hydration: 100, unstable: true},
		{name: "zero hydration", pct: 100, hydration: 0, unstable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol := solve(t, 1000, []Levain{{Percentage: tt.pct, Hydration: tt.hydration}})
			assert.Equal(t, tt.unstable, sol.Unstable)
			for _, c := range sol.Contents {
				assert.GreaterOrEqual(t, c.Flour, 0)
				assert.GreaterOrEqual(t, c.Water, 0)
			}
		})
	}
}

func TestSolveLevains_OutOfRange(t *testing.T) {
	// Just above the threshold the denominator is tiny and the starter flour
	// explodes past what fits in whole grams.
	_, err := SolveLevains(int(maxGrams), []Levain{{Percentage: 198.5, Hydration: 100}})
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSolveLevains_WaterOutOfRange(t *testing.T) {
	// 1e4 of flour at a denominator of 1 makes 1e7 g of flour, fine, holding
	// 1e11 g of water, not.
	_, err := SolveLevains(1000, []Levain{{Percentage: 1e6, Hydration: 1e6}})
	assert.ErrorIs(t, err, ErrOutOfRange)
}
