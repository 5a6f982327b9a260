package handlers

import (
	"context"

	"go.uber.org/zap"

	"insightapi/application/ports"
	"insightapi/application/queries"
	"insightapi/domain/insight"
)

// ListInsightsHandler handles the ListInsightsQuery
type ListInsightsHandler struct {
	repo   ports.InsightRepository
	logger *zap.Logger
}

// NewListInsightsHandler creates a new handler instance
func NewListInsightsHandler(repo ports.InsightRepository, logger *zap.Logger) *ListInsightsHandler {
	return &ListInsightsHandler{
		repo:   repo,
		logger: logger,
	}
}

// ListInsightsResult is the query result
type ListInsightsResult struct {
	Insights []*insight.Insight `json:"insights"`
	Total    int                `json:"total"`
}

// Handle returns the caller's insights in store order; no client-side
// sort is applied
func (h *ListInsightsHandler) Handle(ctx context.Context, query queries.ListInsightsQuery) (*ListInsightsResult, error) {
	insights, err := h.repo.ListByUser(ctx, query.UserID)
	if err != nil {
		h.logger.Error("Failed to list insights",
			zap.String("userID", query.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	return &ListInsightsResult{
		Insights: insights,
		Total:    len(insights),
	}, nil
}
