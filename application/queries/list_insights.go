package queries

import (
	pkgerrors "insightapi/pkg/errors"
	"insightapi/pkg/utils"
)

// ListInsightsQuery retrieves all saved insights for one user, in the
// order the store returns them
type ListInsightsQuery struct {
	UserID string `json:"user_id" validate:"required"`
}

// Validate implements bus.Query
func (q ListInsightsQuery) Validate() error {
	if err := utils.ValidateStruct(q); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}
