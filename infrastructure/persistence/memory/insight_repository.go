// Package memory provides an in-process InsightRepository used by tests
// and local development. It mirrors the DynamoDB repository's contract,
// including store-order listing and NotFound on missing deletes.
package memory

import (
	"context"
	"sync"

	"insightapi/application/ports"
	"insightapi/domain/insight"
	pkgerrors "insightapi/pkg/errors"
)

type InsightRepository struct {
	mu     sync.RWMutex
	byUser map[string][]*insight.Insight
}

// NewInsightRepository creates an empty in-memory repository
func NewInsightRepository() ports.InsightRepository {
	return &InsightRepository{
		byUser: make(map[string][]*insight.Insight),
	}
}

func (r *InsightRepository) Save(ctx context.Context, ins *insight.Insight) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *ins
	r.byUser[ins.UserID] = append(r.byUser[ins.UserID], &copied)
	return nil
}

func (r *InsightRepository) GetByID(ctx context.Context, userID, insightID string) (*insight.Insight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ins := range r.byUser[userID] {
		if ins.ID == insightID {
			copied := *ins
			return &copied, nil
		}
	}
	return nil, pkgerrors.NewNotFoundError("insight")
}

func (r *InsightRepository) ListByUser(ctx context.Context, userID string) ([]*insight.Insight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.byUser[userID]
	insights := make([]*insight.Insight, 0, len(stored))
	for _, ins := range stored {
		copied := *ins
		insights = append(insights, &copied)
	}
	return insights, nil
}

func (r *InsightRepository) Delete(ctx context.Context, userID, insightID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.byUser[userID]
	for i, ins := range stored {
		if ins.ID == insightID {
			r.byUser[userID] = append(stored[:i:i], stored[i+1:]...)
			return nil
		}
	}
	return pkgerrors.NewNotFoundError("insight")
}
