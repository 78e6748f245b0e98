package dough

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// SplitBuild Tests
// =============================================================================

func TestSplitBuild_EqualParts(t *testing.T) {
	q := SplitBuild(BuildRatio{Starter: 1, Flour: 1, Water: 1}, 300)
	assert.Equal(t, BuildQuantities{Starter: 100, Flour: 100, Water: 100}, q)
}

func TestSplitBuild_EmptyRatio(t *testing.T) {
	q := SplitBuild(BuildRatio{}, 300)
	assert.Equal(t, BuildQuantities{}, q)
}

func TestSplitBuild_RoundingDrift(t *testing.T) {
	// 226/3 = 75.33 per part; the gram lost to rounding is not put back.
	q := SplitBuild(BuildRatio{Starter: 1, Flour: 1, Water: 1}, 226)
	assert.Equal(t, BuildQuantities{Starter: 75, Flour: 75, Water: 75}, q)
	assert.Equal(t, 225, q.Total())
}

func TestSplitBuild_TableDriven(t *testing.T) {
	tests := []struct {
		name   string
		ratio  BuildRatio
		target int
		want   BuildQuantities
	}{
		{name: "1:2:2", ratio: BuildRatio{1, 2, 2}, target: 500, want: BuildQuantities{100, 200, 200}},
		{name: "1:5:5", ratio: BuildRatio{1, 5, 5}, target: 220, want: BuildQuantities{20, 100, 100}},
		{name: "no seed starter", ratio: BuildRatio{0, 1, 1}, target: 100, want: BuildQuantities{0, 50, 50}},
		{name: "zero target", ratio: BuildRatio{1, 1, 1}, target: 0, want: BuildQuantities{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitBuild(tt.ratio, tt.target))
		})
	}
}

// =============================================================================
// StarterBuildQuantities Tests
// =============================================================================

func TestStarterBuildQuantities_UsesComputedStarter(t *testing.T) {
	in := sourdough()
	in.Starter.Ratio = BuildRatio{Starter: 1, Flour: 1, Water: 1}

	q, err := StarterBuildQuantities(in)
	require.NoError(t, err)
	assert.Equal(t, BuildQuantities{Starter: 75, Flour: 75, Water: 75}, q)
}

func TestStarterBuildQuantities_ManualOverride(t *testing.T) {
	in := SetManualStarterWeight(sourdough(), 500)
	in.Starter.Ratio = BuildRatio{Starter: 1, Flour: 2, Water: 2}

	q, err := StarterBuildQuantities(in)
	require.NoError(t, err)
	assert.Equal(t, BuildQuantities{Starter: 100, Flour: 200, Water: 200}, q)
}

func TestStarterBuildQuantities_OverrideIgnoredWhileAutoFill(t *testing.T) {
	in := sourdough()
	w := 500
	in.Override = StarterOverride{Weight: &w, AutoFill: true}

	effective, err := EffectiveStarterWeight(in)
	require.NoError(t, err)
	assert.Equal(t, 226, effective)
}

func TestStarterBuildQuantities_OverrideDoesNotTouchDough(t *testing.T) {
	base := sourdough()
	manual := SetManualStarterWeight(base, 500)

	baseWater, err := DirectWaterNeeded(base)
	require.NoError(t, err)
	manualWater, err := DirectWaterNeeded(manual)
	require.NoError(t, err)
	assert.Equal(t, baseWater, manualWater)

	baseStarter, err := TotalStarterWeight(base)
	require.NoError(t, err)
	manualStarter, err := TotalStarterWeight(manual)
	require.NoError(t, err)
	assert.Equal(t, baseStarter, manualStarter)
}

func TestStarterBuildQuantities_OverrideWithZeroSum(t *testing.T) {
	in := SetManualStarterWeight(sourdough(), 300)
	in.Percentages = Percentages{}

	q, err := StarterBuildQuantities(in)
	require.NoError(t, err)
	assert.Equal(t, BuildQuantities{Starter: 100, Flour: 100, Water: 100}, q)
}

func TestStarterBuildQuantities_RejectsNegativeRatio(t *testing.T) {
	in := sourdough()
	in.Starter.Ratio.Water = -1

	_, err := StarterBuildQuantities(in)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
