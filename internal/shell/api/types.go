package api

import "github.com/artpar/doughcalc/internal/core/dough"

// =============================================================================
// Snapshot Payloads
// =============================================================================

// InputsPayload is the JSON form of a recipe snapshot. It is used both as a
// request body and as a response body.
type InputsPayload struct {
	TotalDoughWeight int                `json:"total_dough_weight"`
	Percentages      PercentagesPayload `json:"percentages"`
	Blend            []FlourPayload     `json:"blend"`
	Starter          StarterPayload     `json:"starter"`
}

// PercentagesPayload holds the baker's percentages.
type PercentagesPayload struct {
	Flour   float64 `json:"flour"`
	Water   float64 `json:"water"`
	Salt    float64 `json:"salt"`
	Starter float64 `json:"starter"`
}

// FlourPayload is one flour of the blend.
type FlourPayload struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// StarterPayload describes the levain and its build.
type StarterPayload struct {
	Hydration    float64      `json:"hydration"`
	Ratio        RatioPayload `json:"ratio"`
	ManualWeight *int         `json:"manual_weight,omitempty"`
	AutoFill     bool         `json:"auto_fill"`
}

// RatioPayload is the starter:flour:water build ratio.
type RatioPayload struct {
	Starter int `json:"starter"`
	Flour   int `json:"flour"`
	Water   int `json:"water"`
}

// =============================================================================
// Request Types
// =============================================================================

// SetBlendRequest is the request body for setting one flour's share.
// Value is the raw field text; it is parsed permissively.
type SetBlendRequest struct {
	Blend []FlourPayload `json:"blend"`
	Index int            `json:"index"`
	Value string         `json:"value"`
}

// AddFlourRequest is the request body for adding a flour.
type AddFlourRequest struct {
	Blend []FlourPayload `json:"blend"`
}

// RemoveFlourRequest is the request body for removing a flour.
type RemoveFlourRequest struct {
	Blend []FlourPayload `json:"blend"`
	Index int            `json:"index"`
}

// RenameFlourRequest is the request body for renaming a flour.
type RenameFlourRequest struct {
	Blend []FlourPayload `json:"blend"`
	Index int            `json:"index"`
	Name  string         `json:"name"`
}

// StarterOverrideRequest is the request body for editing the manual starter
// weight. ManualWeight is the raw field text: a blank string clears the
// override. AutoFill=true turns auto-fill back on and clears the override.
type StarterOverrideRequest struct {
	Inputs       InputsPayload `json:"inputs"`
	ManualWeight *string       `json:"manual_weight,omitempty"`
	AutoFill     bool          `json:"auto_fill,omitempty"`
}

// =============================================================================
// Response Types
// =============================================================================

// RecipeResponse is the response for a derivation.
type RecipeResponse struct {
	ID               string                `json:"id"`
	TargetWeight     int                   `json:"target_weight"`
	CalculatedWeight int                   `json:"calculated_weight"`
	FlourUnitWeight  int                   `json:"flour_unit_weight"`
	DirectFlour      int                   `json:"direct_flour"`
	TotalFlour       int                   `json:"total_flour"`
	BlendTotal       float64               `json:"blend_total"`
	Flours           []FlourWeightResponse `json:"flours"`
	TotalWater       int                   `json:"total_water"`
	DirectWater      int                   `json:"direct_water"`
	StarterFlour     int                   `json:"starter_flour"`
	StarterWater     int                   `json:"starter_water"`
	TotalStarter     int                   `json:"total_starter"`
	Salt             int                   `json:"salt"`
	EffectiveStarter int                   `json:"effective_starter"`
	Build            BuildResponse         `json:"build"`
	Notices          []string              `json:"notices"`
}

// FlourWeightResponse is the weight of one flour of the blend.
type FlourWeightResponse struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Weight     int     `json:"weight"`
}

// BuildResponse holds the starter build quantities.
type BuildResponse struct {
	Starter int `json:"starter"`
	Flour   int `json:"flour"`
	Water   int `json:"water"`
}

// BlendResponse is the response for blend edits.
type BlendResponse struct {
	Blend []FlourPayload `json:"blend"`
	Total float64        `json:"total"`
}

// StarterOverrideResponse is the response for starter override edits.
type StarterOverrideResponse struct {
	Inputs           InputsPayload `json:"inputs"`
	EffectiveStarter int           `json:"effective_starter"`
}

// HealthResponse is the response for health check.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// ErrorResponse is the response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field,omitempty"`
}

// =============================================================================
// Conversions
// =============================================================================

func (p InputsPayload) toInputs() dough.Inputs {
	return dough.Inputs{
		Percentages: dough.Percentages{
			Flour:   p.Percentages.Flour,
			Water:   p.Percentages.Water,
			Salt:    p.Percentages.Salt,
			Starter: p.Percentages.Starter,
		},
		Blend: blendFromPayload(p.Blend),
		Starter: dough.StarterConfig{
			Hydration: p.Starter.Hydration,
			Ratio: dough.BuildRatio{
				Starter: p.Starter.Ratio.Starter,
				Flour:   p.Starter.Ratio.Flour,
				Water:   p.Starter.Ratio.Water,
			},
		},
		Override: dough.StarterOverride{
			Weight:   p.Starter.ManualWeight,
			AutoFill: p.Starter.AutoFill,
		},
		TotalDoughWeight: p.TotalDoughWeight,
	}
}

func inputsToPayload(in dough.Inputs) InputsPayload {
	return InputsPayload{
		TotalDoughWeight: in.TotalDoughWeight,
		Percentages: PercentagesPayload{
			Flour:   in.Percentages.Flour,
			Water:   in.Percentages.Water,
			Salt:    in.Percentages.Salt,
			Starter: in.Percentages.Starter,
		},
		Blend: blendToPayload(in.Blend),
		Starter: StarterPayload{
			Hydration: in.Starter.Hydration,
			Ratio: RatioPayload{
				Starter: in.Starter.Ratio.Starter,
				Flour:   in.Starter.Ratio.Flour,
				Water:   in.Starter.Ratio.Water,
			},
			ManualWeight: in.Override.Weight,
			AutoFill:     in.Override.AutoFill,
		},
	}
}

func blendFromPayload(flours []FlourPayload) dough.Blend {
	blend := make(dough.Blend, 0, len(flours))
	for _, f := range flours {
		blend = append(blend, dough.FlourEntry{Name: f.Name, Percentage: f.Percentage})
	}
	return blend
}

func blendToPayload(blend dough.Blend) []FlourPayload {
	flours := make([]FlourPayload, 0, len(blend))
	for _, f := range blend {
		flours = append(flours, FlourPayload{Name: f.Name, Percentage: f.Percentage})
	}
	return flours
}

func recipeToResponse(id string, r dough.Recipe) RecipeResponse {
	resp := RecipeResponse{
		ID:               id,
		TargetWeight:     r.TargetTotal,
		CalculatedWeight: r.CalculatedTotal,
		FlourUnitWeight:  r.FlourUnitWeight,
		DirectFlour:      r.DirectFlour,
		TotalFlour:       r.TotalFlour,
		BlendTotal:       r.BlendTotal,
		Flours:           make([]FlourWeightResponse, 0, len(r.Flours)),
		TotalWater:       r.TotalWater,
		DirectWater:      r.DirectWater,
		StarterFlour:     r.StarterFlour,
		StarterWater:     r.StarterWater,
		TotalStarter:     r.TotalStarter,
		Salt:             r.Salt,
		EffectiveStarter: r.EffectiveStarter,
		Build: BuildResponse{
			Starter: r.Build.Starter,
			Flour:   r.Build.Flour,
			Water:   r.Build.Water,
		},
		Notices: make([]string, 0, len(r.Notices)),
	}
	for _, f := range r.Flours {
		resp.Flours = append(resp.Flours, FlourWeightResponse{
			Name:       f.Name,
			Percentage: f.Percentage,
			Weight:     f.Weight,
		})
	}
	for _, n := range r.Notices {
		resp.Notices = append(resp.Notices, string(n))
	}
	return resp
}
