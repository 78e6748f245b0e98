package dough

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ValidateInputs Tests
// =============================================================================

func TestValidateInputs_Defaults(t *testing.T) {
	field, msg := ValidateInputs(DefaultInputs())
	assert.Empty(t, field)
	assert.Empty(t, msg)
	assert.NoError(t, DefaultInputs().Validate())
}

func TestValidateInputs_TableDriven(t *testing.T) {
	negative := -1

	tests := []struct {
		name      string
		mutate    func(in *Inputs)
		wantField string
		wantMsg   string
	}{
		{
			name:      "NaN flour",
			mutate:    func(in *Inputs) { in.Percentages.Flour = math.NaN() },
			wantField: "percentages.flour",
			wantMsg:   "must be a finite number",
		},
		{
			name:      "infinite salt",
			mutate:    func(in *Inputs) { in.Percentages.Salt = math.Inf(1) },
			wantField: "percentages.salt",
			wantMsg:   "must be a finite number",
		},
		{
			name:      "negative starter",
			mutate:    func(in *Inputs) { in.Percentages.Starter = -20 },
			wantField: "percentages.starter",
			wantMsg:   "must not be negative",
		},
		{
			name:      "negative dough weight",
			mutate:    func(in *Inputs) { in.TotalDoughWeight = -1 },
			wantField: "total_dough_weight",
			wantMsg:   "must not be negative",
		},
		{
			name:      "empty blend",
			mutate:    func(in *Inputs) { in.Blend = nil },
			wantField: "blend",
			wantMsg:   "must contain at least one flour",
		},
		{
			name:      "blend share over 100",
			mutate:    func(in *Inputs) { in.Blend = Blend{{Name: "Bread", Percentage: 120}} },
			wantField: "blend[0].percentage",
			wantMsg:   "must not exceed 100",
		},
		{
			name:      "NaN hydration",
			mutate:    func(in *Inputs) { in.Starter.Hydration = math.NaN() },
			wantField: "starter.hydration",
			wantMsg:   "must be a finite number",
		},
		{
			name:      "negative ratio",
			mutate:    func(in *Inputs) { in.Starter.Ratio.Flour = -2 },
			wantField: "starter.ratio.flour",
			wantMsg:   "must not be negative",
		},
		{
			name:      "negative override",
			mutate:    func(in *Inputs) { in.Override.Weight = &negative },
			wantField: "override.weight",
			wantMsg:   "must not be negative",
		},
		{
			name:      "negative hydration accepted",
			mutate:    func(in *Inputs) { in.Starter.Hydration = -50 },
			wantField: "",
			wantMsg:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := DefaultInputs()
			tt.mutate(&in)

			field, msg := ValidateInputs(in)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestValidate_WrapsErrInvalidInput(t *testing.T) {
	in := DefaultInputs()
	in.TotalDoughWeight = -10

	err := in.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "total_dough_weight: must not be negative", err.Error())

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "total_dough_weight", vErr.Field)
}

func TestValidateInputs_OverrideTooLarge(t *testing.T) {
	in := DefaultInputs()
	huge := int(maxGrams) + 1
	in = SetManualStarterWeight(in, huge)

	field, msg := ValidateInputs(in)
	assert.Equal(t, "override.weight", field)
	assert.Contains(t, msg, "must not exceed")
}

func TestValidateBlend(t *testing.T) {
	tests := []struct {
		name      string
		blend     Blend
		wantField string
	}{
		{name: "valid", blend: Blend{{Name: "Bread", Percentage: 70}, {Name: "Rye", Percentage: 30}}},
		{name: "empty", blend: nil, wantField: "blend"},
		{name: "negative share", blend: Blend{{Name: "A", Percentage: 50}, {Name: "B", Percentage: -10}}, wantField: "blend[1].percentage"},
		{name: "share over 100", blend: Blend{{Name: "A", Percentage: 101}}, wantField: "blend[0].percentage"},
		{name: "NaN share", blend: Blend{{Name: "A", Percentage: math.NaN()}}, wantField: "blend[0].percentage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBlend(tt.blend)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
