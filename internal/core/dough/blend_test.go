package dough

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// SetBlendPercentage Tests
// =============================================================================

func TestSetBlendPercentage_TwoFlours(t *testing.T) {
	blend := Blend{{Name: "Bread", Percentage: 80}, {Name: "Rye", Percentage: 20}}

	next, err := SetBlendPercentage(blend, 0, 60)
	require.NoError(t, err)

	assert.Equal(t, 60.0, next[0].Percentage)
	assert.Equal(t, 40.0, next[1].Percentage)
	assert.Equal(t, 80.0, blend[0].Percentage, "input must not be mutated")
}

func TestSetBlendPercentage_Proportional(t *testing.T) {
	blend := Blend{
		{Name: "Bread", Percentage: 50},
		{Name: "Whole Wheat", Percentage: 30},
		{Name: "Rye", Percentage: 20},
	}

	next, err := SetBlendPercentage(blend, 0, 70)
	require.NoError(t, err)

	assert.Equal(t, 70.0, next[0].Percentage)
	assert.Equal(t, 18.0, next[1].Percentage) // 30/50 * 30
	assert.Equal(t, 12.0, next[2].Percentage) // 20/50 * 30
}

func TestSetBlendPercentage_OthersZeroSplitEqually(t *testing.T) {
	blend := Blend{
		{Name: "Bread", Percentage: 100},
		{Name: "Rye", Percentage: 0},
		{Name: "Spelt", Percentage: 0},
	}

	next, err := SetBlendPercentage(blend, 0, 40)
	require.NoError(t, err)

	assert.Equal(t, 30.0, next[1].Percentage)
	assert.Equal(t, 30.0, next[2].Percentage)
}

func TestSetBlendPercentage_RoundsToTenth(t *testing.T) {
	blend := Blend{
		{Name: "A", Percentage: 0},
		{Name: "B", Percentage: 0},
		{Name: "C", Percentage: 0},
		{Name: "D", Percentage: 0},
	}

	next, err := SetBlendPercentage(blend, 0, 0)
	require.NoError(t, err)

	for _, f := range next[1:] {
		assert.Equal(t, 33.3, f.Percentage)
	}
	assert.Equal(t, 99.9, next.Total()) // accepted drift
}

func TestSetBlendPercentage_Clamps(t *testing.T) {
	blend := Blend{{Name: "Bread", Percentage: 80}, {Name: "Rye", Percentage: 20}}

	high, err := SetBlendPercentage(blend, 1, 150)
	require.NoError(t, err)
	assert.Equal(t, 100.0, high[1].Percentage)
	assert.Equal(t, 0.0, high[0].Percentage)

	low, err := SetBlendPercentage(blend, 1, -20)
	require.NoError(t, err)
	assert.Equal(t, 0.0, low[1].Percentage)
	assert.Equal(t, 100.0, low[0].Percentage)
}

func TestSetBlendPercentage_SingleFlour(t *testing.T) {
	blend := Blend{{Name: "Bread", Percentage: 100}}

	next, err := SetBlendPercentage(blend, 0, 70)
	require.NoError(t, err)
	assert.Equal(t, 70.0, next[0].Percentage)
}

func TestSetBlendPercentage_SumsToHundred(t *testing.T) {
	blend := Blend{
		{Name: "Bread", Percentage: 62.5},
		{Name: "Whole Wheat", Percentage: 25},
		{Name: "Rye", Percentage: 12.5},
	}

	for v := 0.0; v <= 100; v += 7.3 {
		next, err := SetBlendPercentage(blend, 1, v)
		require.NoError(t, err)
		assert.InDelta(t, 100, next.Total(), 0.1, "value %.1f", v)
	}
}

func TestSetBlendPercentage_IndexOutOfRange(t *testing.T) {
	blend := Blend{{Name: "Bread", Percentage: 100}}

	_, err := SetBlendPercentage(blend, 3, 50)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = SetBlendPercentage(blend, -1, 50)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSetBlendPercentage_RejectsInvalidShares(t *testing.T) {
	blend := Blend{{Name: "A", Percentage: 50}, {Name: "B", Percentage: -10}, {Name: "C", Percentage: 30}}

	next, err := SetBlendPercentage(blend, 0, 50)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "blend[1].percentage", vErr.Field)
	assert.Equal(t, blend, next)
}

// =============================================================================
// AddFlour Tests
// =============================================================================

func TestAddFlour_TakesFromBase(t *testing.T) {
	blend := Blend{{Name: "Bread", Percentage: 70}, {Name: "Rye", Percentage: 30}}

	next := AddFlour(blend)

	require.Len(t, next, 3)
	assert.Equal(t, 50.0, next[0].Percentage)
	assert.Equal(t, 30.0, next[1].Percentage)
	assert.Equal(t, FlourEntry{Name: NewFlourName, Percentage: NewFlourShare}, next[2])
	assert.Len(t, blend, 2, "input must not be mutated")
}

func TestAddFlour_BaseFloorsAtZero(t *testing.T) {
	blend := Blend{{Name: "Bread", Percentage: 10}, {Name: "Rye", Percentage: 90}}

	next := AddFlour(blend)

	assert.Equal(t, 0.0, next[0].Percentage)
	assert.Equal(t, 90.0, next[1].Percentage)
}

func TestAddFlour_Empty(t *testing.T) {
	next := AddFlour(nil)
	assert.Equal(t, Blend{{Name: NewFlourName, Percentage: NewFlourShare}}, next)
}

// =============================================================================
// RemoveFlour Tests
// =============================================================================

func TestRemoveFlour_ReturnsShareToBase(t *testing.T) {
	blend := Blend{
		{Name: "Bread", Percentage: 60},
		{Name: "Rye", Percentage: 20},
		{Name: "Spelt", Percentage: 20},
	}

	next, err := RemoveFlour(blend, 2)
	require.NoError(t, err)

	require.Len(t, next, 2)
	assert.Equal(t, 80.0, next[0].Percentage)
	assert.Equal(t, "Rye", next[1].Name)
	assert.Len(t, blend, 3, "input must not be mutated")
	assert.Equal(t, 60.0, blend[0].Percentage)
}

func TestRemoveFlour_BaseCappedAtHundred(t *testing.T) {
	blend := Blend{{Name: "Bread", Percentage: 90}, {Name: "Rye", Percentage: 30}}

	next, err := RemoveFlour(blend, 1)
	require.NoError(t, err)
	assert.Equal(t, 100.0, next[0].Percentage)
}

func TestRemoveFlour_RemovingBase(t *testing.T) {
	blend := Blend{
		{Name: "Bread", Percentage: 50},
		{Name: "Rye", Percentage: 30},
		{Name: "Spelt", Percentage: 20},
	}

	next, err := RemoveFlour(blend, 0)
	require.NoError(t, err)

	require.Len(t, next, 2)
	assert.Equal(t, "Rye", next[0].Name)
	assert.Equal(t, 80.0, next[0].Percentage) // absorbs 100 - 50
	assert.Equal(t, 20.0, next[1].Percentage)
}

func TestRemoveFlour_RemovingBaseNothingUnaccounted(t *testing.T) {
	blend := Blend{
		{Name: "Bread", Percentage: 0},
		{Name: "Rye", Percentage: 60},
		{Name: "Spelt", Percentage: 40},
	}

	next, err := RemoveFlour(blend, 0)
	require.NoError(t, err)
	assert.Equal(t, 60.0, next[0].Percentage)
}

func TestRemoveFlour_LastFlourIsNoop(t *testing.T) {
	blend := Blend{{Name: "Bread", Percentage: 100}}

	next, err := RemoveFlour(blend, 0)
	assert.ErrorIs(t, err, ErrLastFlour)
	assert.Equal(t, blend, next)
}

func TestRemoveFlour_RejectsInvalidShares(t *testing.T) {
	blend := Blend{{Name: "A", Percentage: 150}, {Name: "B", Percentage: 20}}

	_, err := RemoveFlour(blend, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRemoveFlour_IndexOutOfRange(t *testing.T) {
	blend := Blend{{Name: "Bread", Percentage: 80}, {Name: "Rye", Percentage: 20}}

	_, err := RemoveFlour(blend, 5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestBlend_SingleFlourStaysFull(t *testing.T) {
	blend := Blend{{Name: "Bread", Percentage: 100}}

	for i := 0; i < 3; i++ {
		next, err := RemoveFlour(blend, 0)
		assert.ErrorIs(t, err, ErrLastFlour)
		blend = next
	}

	require.Len(t, blend, 1)
	assert.Equal(t, 100.0, blend[0].Percentage)

	added := AddFlour(blend)
	back, err := RemoveFlour(added, 1)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Equal(t, 100.0, back[0].Percentage)
}

// =============================================================================
// RenameFlour / Total Tests
// =============================================================================

func TestRenameFlour(t *testing.T) {
	blend := Blend{{Name: "Bread", Percentage: 100}}

	next, err := RenameFlour(blend, 0, "Type 65")
	require.NoError(t, err)
	assert.Equal(t, "Type 65", next[0].Name)
	assert.Equal(t, "Bread", blend[0].Name)

	_, err = RenameFlour(blend, 1, "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestBlendTotal(t *testing.T) {
	assert.Equal(t, 100.0, Blend{{Percentage: 60}, {Percentage: 40}}.Total())
	assert.Equal(t, 100.1, Blend{{Percentage: 33.4}, {Percentage: 33.4}, {Percentage: 33.3}}.Total())
	assert.Equal(t, 0.0, Blend{}.Total())
}
