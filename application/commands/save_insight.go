package commands

import (
	"insightapi/domain/analysis"
	pkgerrors "insightapi/pkg/errors"
	"insightapi/pkg/utils"
)

// SaveInsightCommand persists a generated analysis for the calling user.
// The insight ID is assigned by the caller so the API response can
// reference it before the handler completes.
type SaveInsightCommand struct {
	InsightID   string               `json:"insight_id" validate:"required,uuid4"`
	UserID      string               `json:"user_id" validate:"required"`
	Description string               `json:"description" validate:"required,min=10"`
	Mode        analysis.Mode        `json:"mode" validate:"required"`
	Kind        analysis.Kind        `json:"kind" validate:"required"`
	Record      analysis.Record      `json:"record"`
	Series      analysis.ChartSeries `json:"series"`
}

// Validate implements bus.Command
func (c SaveInsightCommand) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}
