package queries

import (
	"github.com/google/uuid"

	pkgerrors "insightapi/pkg/errors"
	"insightapi/pkg/utils"
)

// GetInsightQuery retrieves one saved insight owned by the calling user
type GetInsightQuery struct {
	UserID    string `json:"user_id" validate:"required"`
	InsightID string `json:"insight_id" validate:"required"`
}

// Validate implements bus.Query. An id that is not a well-formed UUID
// can never name a stored insight, so it reports NotFound rather than a
// validation failure.
func (q GetInsightQuery) Validate() error {
	if err := utils.ValidateStruct(q); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	if uuid.Validate(q.InsightID) != nil {
		return pkgerrors.NewNotFoundError("insight")
	}
	return nil
}
