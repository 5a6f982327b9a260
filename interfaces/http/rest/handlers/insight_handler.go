package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	commandbus "insightapi/application/commands/bus"
	querybus "insightapi/application/queries/bus"

	"insightapi/application/commands"
	"insightapi/application/queries"
	"insightapi/domain/analysis"
	"insightapi/pkg/auth"
	"insightapi/pkg/common"
	pkgerrors "insightapi/pkg/errors"
)

// InsightHandler serves save, list, get and delete for stored insights
type InsightHandler struct {
	commandBus *commandbus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(commandBus *commandbus.CommandBus, queryBus *querybus.QueryBus, logger *zap.Logger) *InsightHandler {
	return &InsightHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// SaveInsightRequest is the request body for POST /insights. The series
// is derived from the record when omitted.
type SaveInsightRequest struct {
	Description string               `json:"description"`
	Mode        string               `json:"mode"`
	Kind        string               `json:"kind"`
	Record      analysis.Record      `json:"record"`
	Series      analysis.ChartSeries `json:"series"`
}

// Save handles POST /api/v1/insights. The insight id is assigned here so
// the response can carry it; the save is confirmed by the store before
// the response is written.
func (h *InsightHandler) Save(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewUnauthorizedError("authentication required"))
		return
	}

	var body SaveInsightRequest
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
	if len(body.Series) == 0 {
		body.Series = analysis.DeriveChartSeries(body.Record)
	}

	insightID := uuid.New().String()
	cmd := commands.SaveInsightCommand{
		InsightID:   insightID,
		UserID:      user.UserID,
		Description: body.Description,
		Mode:        analysis.Mode(body.Mode),
		Kind:        analysis.Kind(body.Kind),
		Record:      body.Record,
		Series:      body.Series,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, map[string]string{
		"id": insightID,
	})
}

// List handles GET /api/v1/insights
func (h *InsightHandler) List(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewUnauthorizedError("authentication required"))
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ListInsightsQuery{UserID: user.UserID})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// Get handles GET /api/v1/insights/{id}
func (h *InsightHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewUnauthorizedError("authentication required"))
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetInsightQuery{
		UserID:    user.UserID,
		InsightID: chi.URLParam(r, "id"),
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /api/v1/insights/{id}
func (h *InsightHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewUnauthorizedError("authentication required"))
		return
	}

	cmd := commands.DeleteInsightCommand{
		UserID:    user.UserID,
		InsightID: chi.URLParam(r, "id"),
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
