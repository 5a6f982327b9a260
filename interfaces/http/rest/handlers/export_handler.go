package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	querybus "insightapi/application/queries/bus"

	"insightapi/application/ports"
	"insightapi/application/queries"
	"insightapi/domain/analysis"
	"insightapi/domain/insight"
	"insightapi/infrastructure/report"
	"insightapi/pkg/auth"
	"insightapi/pkg/common"
	pkgerrors "insightapi/pkg/errors"
)

// ExportHandler serves PDF report downloads, both for saved insights and
// for unsaved analysis payloads posted directly.
type ExportHandler struct {
	queryBus  *querybus.QueryBus
	assembler ports.ReportAssembler
	logger    *zap.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(queryBus *querybus.QueryBus, assembler ports.ReportAssembler, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{
		queryBus:  queryBus,
		assembler: assembler,
		logger:    logger,
	}
}

// ExportSaved handles GET /api/v1/insights/{id}/report
func (h *ExportHandler) ExportSaved(w http.ResponseWriter, r *http.Request) {
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

	ins, ok := result.(*insight.Insight)
	if !ok {
		common.RespondAppError(w, pkgerrors.NewInternalError("unexpected query result"))
		return
	}

	req, record, series, err := ins.Load()
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	h.writeReport(w, r, req, record, series)
}

// ExportPayloadRequest is the request body for POST /reports. It carries
// a full unsaved analysis; the series is derived when omitted.
type ExportPayloadRequest struct {
	Description string               `json:"description"`
	Mode        string               `json:"mode"`
	Kind        string               `json:"kind"`
	Record      analysis.Record      `json:"record"`
	Series      analysis.ChartSeries `json:"series"`
}

// ExportPayload handles POST /api/v1/reports
func (h *ExportHandler) ExportPayload(w http.ResponseWriter, r *http.Request) {
	if _, err := auth.GetUserFromContext(r.Context()); err != nil {
		common.RespondAppError(w, pkgerrors.NewUnauthorizedError("authentication required"))
		return
	}

	var body ExportPayloadRequest
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
	if body.Record.IsEmpty() {
		common.RespondAppError(w, pkgerrors.NewValidationError("cannot export an empty analysis"))
		return
	}
	if len(body.Series) == 0 {
		body.Series = analysis.DeriveChartSeries(body.Record)
	}

	req, err := analysis.NewRequest(body.Description, analysis.Mode(body.Mode), analysis.Kind(body.Kind))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	h.writeReport(w, r, req, body.Record, body.Series)
}

// writeReport assembles the document into a buffer first, so a layout
// failure still produces a well-formed error response
func (h *ExportHandler) writeReport(w http.ResponseWriter, r *http.Request, req analysis.Request, record analysis.Record, series analysis.ChartSeries) {
	var buf bytes.Buffer
	if err := h.assembler.Assemble(r.Context(), &buf, req, record, series); err != nil {
		h.logger.Error("Report assembly failed", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.DefaultFilename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
