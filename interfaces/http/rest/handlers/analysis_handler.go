package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"insightapi/application/services"
	"insightapi/domain/analysis"
	"insightapi/pkg/auth"
	"insightapi/pkg/common"
	pkgerrors "insightapi/pkg/errors"
)

// AnalysisHandler serves on-demand analysis generation
type AnalysisHandler struct {
	generation *services.GenerationService
	logger     *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(generation *services.GenerationService, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		generation: generation,
		logger:     logger,
	}
}

// GenerateRequest is the request body for POST /analyses. Mode and kind
// fall back to their defaults when omitted.
type GenerateRequest struct {
	Description string `json:"description"`
	Mode        string `json:"mode"`
	Kind        string `json:"kind"`
}

// Generate handles POST /api/v1/analyses
func (h *AnalysisHandler) Generate(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewUnauthorizedError("authentication required"))
		return
	}

	var body GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("invalid request body"))
		return
	}

	if body.Mode == "" {
		body.Mode = string(analysis.ModeStartup)
	}
	if body.Kind == "" {
		body.Kind = string(analysis.KindSWOT)
	}

	req, err := analysis.NewRequest(body.Description, analysis.Mode(body.Mode), analysis.Kind(body.Kind))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.generation.Generate(r.Context(), user.UserID, req)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
