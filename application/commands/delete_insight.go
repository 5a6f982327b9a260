package commands

import (
	"github.com/google/uuid"

	pkgerrors "insightapi/pkg/errors"
	"insightapi/pkg/utils"
)

// DeleteInsightCommand removes a saved analysis owned by the calling
// user. Deleting a missing or foreign insight is an error surfaced to
// the caller, never silently ignored.
type DeleteInsightCommand struct {
	UserID    string `json:"user_id" validate:"required"`
	InsightID string `json:"insight_id" validate:"required"`
}

// Validate implements bus.Command. An id that is not a well-formed UUID
// can never name a stored insight, so it reports NotFound rather than a
// validation failure.
func (c DeleteInsightCommand) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	if uuid.Validate(c.InsightID) != nil {
		return pkgerrors.NewNotFoundError("insight")
	}
	return nil
}
