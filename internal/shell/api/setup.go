package api

import (
	"log/slog"
	"net/http"

	"github.com/artpar/doughcalc/internal/core/dough"
	"github.com/artpar/doughcalc/internal/core/input"
	"github.com/artpar/doughcalc/internal/shell/api/openapi"
)

// =============================================================================
// API Setup
// =============================================================================

// APIConfig holds configuration for the API setup.
type APIConfig struct {
	Logger   *slog.Logger
	Defaults dough.Inputs // Snapshot served by /defaults and completed by form queries
	Version  string
}

// SetupAPI creates the complete API router.
// Returns an http.Handler that can be used as the server's main handler.
func SetupAPI(cfg APIConfig) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if len(cfg.Defaults.Blend) == 0 {
		cfg.Defaults = dough.DefaultInputs()
	}

	gen := openapi.NewGenerator(
		openapi.WithTitle("doughcalc API"),
		openapi.WithVersion(versionOrDefault(cfg.Version)),
		openapi.WithDescription("Baker's percentage, levain and starter build calculator"),
		openapi.WithServer("/"),
	)
	registerOperations(gen)

	h := NewHandler(cfg.Logger, cfg.Defaults, cfg.Version)
	return h.Routes(gen.Handler())
}

func versionOrDefault(v string) string {
	if v == "" || v == "dev" {
		return "0.0.0-dev"
	}
	return v
}

// registerOperations describes every route for the OpenAPI document.
func registerOperations(gen *openapi.Generator) {
	gen.RegisterOperation(openapi.OperationInfo{
		Method:      http.MethodGet,
		Path:        "/api/v1/recipes/defaults",
		OperationID: "getDefaults",
		Summary:     "Default recipe snapshot",
		Tag:         "Recipes",
		Response:    InputsPayload{},
	})
	gen.RegisterOperation(openapi.OperationInfo{
		Method:      http.MethodPost,
		Path:        "/api/v1/recipes/derive",
		OperationID: "deriveRecipe",
		Summary:     "Derive ingredient weights from a snapshot",
		Tag:         "Recipes",
		Request:     InputsPayload{},
		Response:    RecipeResponse{},
		Errors:      []int{http.StatusBadRequest, http.StatusUnprocessableEntity},
	})
	gen.RegisterOperation(openapi.OperationInfo{
		Method:      http.MethodGet,
		Path:        "/api/v1/recipes/derive",
		OperationID: "deriveRecipeFromForm",
		Summary:     "Derive ingredient weights from raw form fields",
		Tag:         "Recipes",
		Response:    RecipeResponse{},
		Query: []string{
			input.FieldTotalDoughWeight,
			input.FieldFlour,
			input.FieldWater,
			input.FieldSalt,
			input.FieldStarter,
			input.FieldStarterHydration,
			input.FieldRatioStarter,
			input.FieldRatioFlour,
			input.FieldRatioWater,
			input.FieldManualStarterWeight,
			input.FieldAutoFill,
		},
		Errors: []int{http.StatusBadRequest, http.StatusUnprocessableEntity},
	})
	gen.RegisterOperation(openapi.OperationInfo{
		Method:      http.MethodPost,
		Path:        "/api/v1/blend/set",
		OperationID: "setFlourShare",
		Summary:     "Set one flour's share and redistribute the rest",
		Tag:         "Blend",
		Request:     SetBlendRequest{},
		Response:    BlendResponse{},
		Errors:      []int{http.StatusBadRequest},
	})
	gen.RegisterOperation(openapi.OperationInfo{
		Method:      http.MethodPost,
		Path:        "/api/v1/blend/add",
		OperationID: "addFlour",
		Summary:     "Add a flour to the blend",
		Tag:         "Blend",
		Request:     AddFlourRequest{},
		Response:    BlendResponse{},
		Errors:      []int{http.StatusBadRequest},
	})
	gen.RegisterOperation(openapi.OperationInfo{
		Method:      http.MethodPost,
		Path:        "/api/v1/blend/remove",
		OperationID: "removeFlour",
		Summary:     "Remove a flour from the blend",
		Tag:         "Blend",
		Request:     RemoveFlourRequest{},
		Response:    BlendResponse{},
		Errors:      []int{http.StatusBadRequest, http.StatusConflict},
	})
	gen.RegisterOperation(openapi.OperationInfo{
		Method:      http.MethodPost,
		Path:        "/api/v1/blend/rename",
		OperationID: "renameFlour",
		Summary:     "Rename a flour of the blend",
		Tag:         "Blend",
		Request:     RenameFlourRequest{},
		Response:    BlendResponse{},
		Errors:      []int{http.StatusBadRequest},
	})
	gen.RegisterOperation(openapi.OperationInfo{
		Method:      http.MethodPost,
		Path:        "/api/v1/starter/override",
		OperationID: "setStarterOverride",
		Summary:     "Set or clear the manual starter weight",
		Tag:         "Starter",
		Request:     StarterOverrideRequest{},
		Response:    StarterOverrideResponse{},
		Errors:      []int{http.StatusBadRequest, http.StatusUnprocessableEntity},
	})
	gen.RegisterOperation(openapi.OperationInfo{
		Method:      http.MethodGet,
		Path:        "/health",
		OperationID: "health",
		Summary:     "Liveness check",
		Tag:         "System",
		Response:    HealthResponse{},
	})
}
