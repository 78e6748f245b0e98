// Package dough provides pure functions for baker's-percentage recipe derivation.
//
// This package contains the functional core of the calculator. Every function
// reads an Inputs snapshot and returns grams; nothing is cached and nothing is
// mutated, so all functions are safe for concurrent use.
//
// # Functions
//
//   - Basis: FlourUnitWeight, WeightFromPercentage, TotalFlourWeight, WeightFromBakersPercentage
//   - Starter: StarterFlourContent, StarterWaterContent, TotalStarterWeight, SolveLevains
//   - Water: DirectWaterNeeded
//   - Build: StarterBuildQuantities, EffectiveStarterWeight
//   - Blend: SetBlendPercentage, AddFlour, RemoveFlour, RenameFlour
//   - Snapshot: SetManualStarterWeight, ClearManualStarterWeight, EnableAutoFill
//   - Aggregate: Derive
//
// # Usage
//
// The imperative shell (internal/shell/api, cmd/doughcalc) parses raw input at
// the boundary, builds an Inputs value and asks for the derived weights:
//
//	in := dough.DefaultInputs()
//	in.TotalDoughWeight = 1500
//	recipe, err := dough.Derive(in)
//	if errors.Is(err, dough.ErrInvalidConfiguration) {
//	    // Percentages sum to zero; show a warning instead of weights
//	}
package dough
