package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"insightapi/application/commands"
	"insightapi/application/ports"
	"insightapi/domain/events"
)

// DeleteInsightHandler handles the DeleteInsightCommand
type DeleteInsightHandler struct {
	repo      ports.InsightRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewDeleteInsightHandler creates a new handler instance
func NewDeleteInsightHandler(
	repo ports.InsightRepository,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *DeleteInsightHandler {
	return &DeleteInsightHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle removes the insight. A missing or foreign insight surfaces as
// NotFound from the repository.
func (h *DeleteInsightHandler) Handle(ctx context.Context, cmd commands.DeleteInsightCommand) error {
	if err := h.repo.Delete(ctx, cmd.UserID, cmd.InsightID); err != nil {
		return err
	}

	if h.publisher != nil {
		event := events.NewInsightDeleted(cmd.InsightID, cmd.UserID, time.Now())
		if err := h.publisher.Publish(ctx, event); err != nil {
			h.logger.Warn("Failed to publish insight.deleted event",
				zap.String("insightID", cmd.InsightID),
				zap.Error(err),
			)
		}
	}

	h.logger.Info("Insight deleted",
		zap.String("insightID", cmd.InsightID),
		zap.String("userID", cmd.UserID),
	)

	return nil
}
