package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"insightapi/domain/analysis"
	"insightapi/domain/insight"
	"insightapi/infrastructure/di"
	"insightapi/infrastructure/persistence/memory"
	"insightapi/infrastructure/report"
)

func newExportTestServer(t *testing.T, userID string) (*chi.Mux, *insight.Insight) {
	t.Helper()
	logger := zap.NewNop()
	repo := memory.NewInsightRepository()

	req, err := analysis.NewRequest("A subscription service for houseplant care kits.", analysis.ModeStartup, analysis.KindSWOT)
	require.NoError(t, err)
	record := analysis.Record{
		Strengths:  []string{"recurring revenue"},
		Weaknesses: []string{"seasonal churn"},
	}
	ins, err := insight.New("", "user-1", req, record, analysis.DeriveChartSeries(record))
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), ins))

	queryBus := di.ProvideQueryBus(repo, logger)
	assembler := report.NewPDFAssembler(report.NewChartImageRenderer(), logger)
	handler := NewExportHandler(queryBus, assembler, logger)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		if userID != "" {
			r.Use(asUser(userID))
		}
		r.Get("/insights/{id}/report", handler.ExportSaved)
		r.Post("/reports", handler.ExportPayload)
	})
	return r, ins
}

func TestExportSaved_DeliversPDF(t *testing.T) {
	r, ins := newExportTestServer(t, "user-1")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/insights/"+ins.ID+"/report", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), report.DefaultFilename)
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestExportSaved_ForeignUserIsNotFound(t *testing.T) {
	r, ins := newExportTestServer(t, "user-2")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/insights/"+ins.ID+"/report", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportPayload_DeliversPDF(t *testing.T) {
	r, _ := newExportTestServer(t, "user-1")

	body, _ := json.Marshal(map[string]interface{}{
		"description": "A subscription service for houseplant care kits.",
		"record": map[string][]string{
			"opportunities": {"gift market"},
		},
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reports", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestExportPayload_EmptyRecordRejected(t *testing.T) {
	r, _ := newExportTestServer(t, "user-1")

	body, _ := json.Marshal(map[string]interface{}{
		"description": "A subscription service for houseplant care kits.",
		"record":      map[string][]string{},
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reports", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
