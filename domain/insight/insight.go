package insight

import (
	"time"

	"github.com/google/uuid"

	"insightapi/domain/analysis"
	pkgerrors "insightapi/pkg/errors"
)

// Insight is a persisted analysis owned by one user. It is created by an
// explicit save after a successful generation and never mutated in
// place; reloading one replaces the caller's working state.
type Insight struct {
	ID        string               `json:"id"`
	UserID    string               `json:"user_id"`
	Request   RequestSnapshot      `json:"request"`
	Record    analysis.Record      `json:"record"`
	Series    analysis.ChartSeries `json:"series"`
	CreatedAt time.Time            `json:"created_at"`
}

// RequestSnapshot is the serializable form of the originating request
type RequestSnapshot struct {
	Description string        `json:"description"`
	Mode        analysis.Mode `json:"mode"`
	Kind        analysis.Kind `json:"kind"`
}

// New creates an insight from a generated analysis. The record must be
// non-empty. An empty id gets a generated one; callers that need the id
// before the save completes pass their own.
func New(id, userID string, req analysis.Request, record analysis.Record, series analysis.ChartSeries) (*Insight, error) {
	if userID == "" {
		return nil, pkgerrors.NewUnauthorizedError("insight requires an authenticated user")
	}
	if record.IsEmpty() {
		return nil, pkgerrors.NewValidationError("cannot save an empty analysis")
	}
	if id == "" {
		id = uuid.New().String()
	}

	return &Insight{
		ID:     id,
		UserID: userID,
		Request: RequestSnapshot{
			Description: req.Description(),
			Mode:        req.Mode(),
			Kind:        req.Kind(),
		},
		Record:    record,
		Series:    series,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}, nil
}

// Load reconstructs the working state captured by the insight: the
// originating request, the parsed record, and the chart series.
func (i *Insight) Load() (analysis.Request, analysis.Record, analysis.ChartSeries, error) {
	req, err := analysis.NewRequest(i.Request.Description, i.Request.Mode, i.Request.Kind)
	if err != nil {
		return analysis.Request{}, analysis.Record{}, nil, err
	}
	return req, i.Record, i.Series, nil
}
