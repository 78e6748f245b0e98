package dough

// =============================================================================
// Snapshot Transitions
// =============================================================================

// SetManualStarterWeight returns the next snapshot after the user types a
// starter weight for the build. Typing a weight turns auto-fill off.
func SetManualStarterWeight(in Inputs, grams int) Inputs {
	next := in.Clone()
	next.Override.Weight = &grams
	next.Override.AutoFill = false
	return next
}

// ClearManualStarterWeight returns the next snapshot after the manual weight
// field is emptied. Auto-fill keeps its state; with no weight the build falls
// back to the computed starter.
func ClearManualStarterWeight(in Inputs) Inputs {
	next := in.Clone()
	next.Override.Weight = nil
	return next
}

// EnableAutoFill returns the next snapshot with the build following the
// computed starter weight again.
func EnableAutoFill(in Inputs) Inputs {
	next := in.Clone()
	next.Override.Weight = nil
	next.Override.AutoFill = true
	return next
}
