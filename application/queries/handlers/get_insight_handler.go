package handlers

import (
	"context"

	"go.uber.org/zap"

	"insightapi/application/ports"
	"insightapi/application/queries"
	"insightapi/domain/insight"
)

// GetInsightHandler handles the GetInsightQuery
type GetInsightHandler struct {
	repo   ports.InsightRepository
	logger *zap.Logger
}

// NewGetInsightHandler creates a new handler instance
func NewGetInsightHandler(repo ports.InsightRepository, logger *zap.Logger) *GetInsightHandler {
	return &GetInsightHandler{
		repo:   repo,
		logger: logger,
	}
}

// Handle loads one insight scoped to the calling user
func (h *GetInsightHandler) Handle(ctx context.Context, query queries.GetInsightQuery) (*insight.Insight, error) {
	ins, err := h.repo.GetByID(ctx, query.UserID, query.InsightID)
	if err != nil {
		return nil, err
	}
	return ins, nil
}
