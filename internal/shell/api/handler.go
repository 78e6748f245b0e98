// Package api provides HTTP handlers for the calculator API.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/artpar/doughcalc/internal/core/dough"
	"github.com/artpar/doughcalc/internal/core/input"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// =============================================================================
// Handler
// =============================================================================

// Handler provides HTTP handlers for the API. It holds no recipe state:
// every request carries the snapshot it works on.
type Handler struct {
	logger   *slog.Logger
	defaults dough.Inputs
	version  string
}

// NewHandler creates a new API handler.
func NewHandler(l *slog.Logger, defaults dough.Inputs, version string) *Handler {
	if l == nil {
		l = slog.Default()
	}
	return &Handler{
		logger:   l,
		defaults: defaults.Clone(),
		version:  version,
	}
}

// Routes returns the router with all routes configured. spec serves the
// OpenAPI document; nil leaves the route out.
func (h *Handler) Routes(spec http.HandlerFunc) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(h.jsonContentType)
	r.Use(h.requestIDHeader)

	// Health endpoints
	r.Get("/health", h.handleHealth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		if spec != nil {
			r.Get("/openapi.json", spec)
		}

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/defaults", h.handleDefaults)
			r.Post("/derive", h.handleDerive)
			r.Get("/derive", h.handleDeriveForm)
		})

		r.Route("/blend", func(r chi.Router) {
			r.Post("/set", h.handleSetBlend)
			r.Post("/add", h.handleAddFlour)
			r.Post("/remove", h.handleRemoveFlour)
			r.Post("/rename", h.handleRenameFlour)
		})

		r.Post("/starter/override", h.handleStarterOverride)
	})

	return r
}

// =============================================================================
// Middleware
// =============================================================================

// jsonContentType sets Content-Type header to application/json.
func (h *Handler) jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// requestIDHeader copies the request ID to the response header.
func (h *Handler) requestIDHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if reqID := middleware.GetReqID(r.Context()); reqID != "" {
			w.Header().Set("X-Request-ID", reqID)
		}
		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// Health Handlers
// =============================================================================

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy", Version: h.version})
}

// =============================================================================
// Recipe Handlers
// =============================================================================

func (h *Handler) handleDefaults(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, inputsToPayload(h.defaults))
}

func (h *Handler) handleDerive(w http.ResponseWriter, r *http.Request) {
	var req InputsPayload
	if !h.decode(w, r, &req) {
		return
	}
	h.derive(w, r, req.toInputs())
}

// handleDeriveForm derives from raw query fields on top of the defaults.
// Blank and unreadable fields count as zero.
func (h *Handler) handleDeriveForm(w http.ResponseWriter, r *http.Request) {
	form := make(input.Form)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			form[key] = values[len(values)-1]
		}
	}
	h.derive(w, r, input.Apply(h.defaults, form))
}

func (h *Handler) derive(w http.ResponseWriter, r *http.Request, in dough.Inputs) {
	id := "calc_" + uuid.New().String()[:8]

	recipe, err := dough.Derive(in)
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}

	h.logger.Debug("recipe derived",
		"calculation_id", id,
		"request_id", middleware.GetReqID(r.Context()),
		"total_dough_weight", in.TotalDoughWeight,
		"total_flour", recipe.TotalFlour,
		"total_starter", recipe.TotalStarter,
		"notices", len(recipe.Notices),
	)

	h.writeJSON(w, http.StatusOK, recipeToResponse(id, recipe))
}

// =============================================================================
// Blend Handlers
// =============================================================================

func (h *Handler) handleSetBlend(w http.ResponseWriter, r *http.Request) {
	var req SetBlendRequest
	if !h.decode(w, r, &req) {
		return
	}
	blend, ok := h.blend(w, r, req.Blend)
	if !ok {
		return
	}
	next, err := dough.SetBlendPercentage(blend, req.Index, input.ParseBlendShare(req.Value))
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	h.writeBlend(w, next)
}

func (h *Handler) handleAddFlour(w http.ResponseWriter, r *http.Request) {
	var req AddFlourRequest
	if !h.decode(w, r, &req) {
		return
	}
	blend, ok := h.blend(w, r, req.Blend)
	if !ok {
		return
	}
	h.writeBlend(w, dough.AddFlour(blend))
}

func (h *Handler) handleRemoveFlour(w http.ResponseWriter, r *http.Request) {
	var req RemoveFlourRequest
	if !h.decode(w, r, &req) {
		return
	}
	blend, ok := h.blend(w, r, req.Blend)
	if !ok {
		return
	}
	next, err := dough.RemoveFlour(blend, req.Index)
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	h.writeBlend(w, next)
}

func (h *Handler) handleRenameFlour(w http.ResponseWriter, r *http.Request) {
	var req RenameFlourRequest
	if !h.decode(w, r, &req) {
		return
	}
	blend, ok := h.blend(w, r, req.Blend)
	if !ok {
		return
	}
	next, err := dough.RenameFlour(blend, req.Index, req.Name)
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	h.writeBlend(w, next)
}

// =============================================================================
// Starter Handlers
// =============================================================================

func (h *Handler) handleStarterOverride(w http.ResponseWriter, r *http.Request) {
	var req StarterOverrideRequest
	if !h.decode(w, r, &req) {
		return
	}

	next := req.Inputs.toInputs()
	if req.ManualWeight != nil {
		if weight := input.ParseOverride(*req.ManualWeight); weight != nil {
			next = dough.SetManualStarterWeight(next, *weight)
		} else {
			next = dough.ClearManualStarterWeight(next)
		}
	}
	if req.AutoFill {
		next = dough.EnableAutoFill(next)
	}

	effective, err := dough.EffectiveStarterWeight(next)
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, StarterOverrideResponse{
		Inputs:           inputsToPayload(next),
		EffectiveStarter: effective,
	})
}

// =============================================================================
// Helpers
// =============================================================================

// decode reads a strict JSON body. It writes the error response itself and
// reports whether the handler should continue.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON", "validation_error")
		return false
	}
	return true
}

// blend converts and validates the blend carried by a request. It writes the
// error response itself and reports whether the handler should continue.
func (h *Handler) blend(w http.ResponseWriter, r *http.Request, flours []FlourPayload) (dough.Blend, bool) {
	blend := blendFromPayload(flours)
	if err := dough.ValidateBlend(blend); err != nil {
		h.writeEngineError(w, r, err)
		return nil, false
	}
	return blend, true
}

// writeEngineError maps engine errors to HTTP responses.
func (h *Handler) writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *dough.ValidationError
	switch {
	case errors.As(err, &vErr):
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: vErr.Error(),
			Code:  "validation_error",
			Field: vErr.Field,
		})
	case errors.Is(err, dough.ErrInvalidConfiguration):
		h.logger.Warn("invalid recipe configuration",
			"request_id", middleware.GetReqID(r.Context()),
		)
		h.writeError(w, http.StatusUnprocessableEntity, err.Error(), "invalid_configuration")
	case errors.Is(err, dough.ErrOutOfRange):
		h.logger.Warn("derived weight out of range",
			"error", err,
			"request_id", middleware.GetReqID(r.Context()),
		)
		h.writeError(w, http.StatusUnprocessableEntity, err.Error(), "out_of_range")
	case errors.Is(err, dough.ErrIndexOutOfRange):
		h.writeError(w, http.StatusBadRequest, err.Error(), "index_out_of_range")
	case errors.Is(err, dough.ErrLastFlour):
		h.writeError(w, http.StatusConflict, err.Error(), "last_flour")
	default:
		h.logger.Error("unexpected engine error",
			"error", err,
			"request_id", middleware.GetReqID(r.Context()),
		)
		h.writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
	}
}

func (h *Handler) writeBlend(w http.ResponseWriter, blend dough.Blend) {
	h.writeJSON(w, http.StatusOK, BlendResponse{
		Blend: blendToPayload(blend),
		Total: blend.Total(),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode JSON", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message, code string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}
