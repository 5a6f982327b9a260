package handlers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"insightapi/application/commands"
	"insightapi/application/ports"
	"insightapi/domain/analysis"
	"insightapi/domain/events"
	"insightapi/domain/insight"
)

// SaveInsightHandler handles the SaveInsightCommand
type SaveInsightHandler struct {
	repo      ports.InsightRepository
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewSaveInsightHandler creates a new handler instance
func NewSaveInsightHandler(
	repo ports.InsightRepository,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *SaveInsightHandler {
	return &SaveInsightHandler{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle persists the insight. Nothing is reflected to the caller until
// the store confirms the write, so a failed save leaves no stale state
// behind.
func (h *SaveInsightHandler) Handle(ctx context.Context, cmd commands.SaveInsightCommand) error {
	req, err := analysis.NewRequest(cmd.Description, cmd.Mode, cmd.Kind)
	if err != nil {
		return err
	}

	ins, err := insight.New(cmd.InsightID, cmd.UserID, req, cmd.Record, cmd.Series)
	if err != nil {
		return err
	}

	if err := h.repo.Save(ctx, ins); err != nil {
		h.logger.Error("Failed to save insight",
			zap.String("insightID", ins.ID),
			zap.String("userID", cmd.UserID),
			zap.Error(err),
		)
		return err
	}

	// Event publication is best effort; the save already succeeded.
	if h.publisher != nil {
		event := events.NewInsightSaved(ins.ID, ins.UserID, string(ins.Request.Kind), time.Now())
		if err := h.publisher.Publish(ctx, event); err != nil {
			h.logger.Warn("Failed to publish insight.saved event",
				zap.String("insightID", ins.ID),
				zap.Error(err),
			)
		}
	}

	h.logger.Info("Insight saved",
		zap.String("insightID", ins.ID),
		zap.String("userID", ins.UserID),
		zap.String("kind", string(ins.Request.Kind)),
		zap.Int("items", ins.Record.ItemCount()),
	)

	return nil
}
