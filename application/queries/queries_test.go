package queries

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "insightapi/pkg/errors"
)

func TestGetInsightQuery_MalformedIDIsNotFound(t *testing.T) {
	err := GetInsightQuery{UserID: "user-1", InsightID: "not-a-uuid"}.Validate()
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestGetInsightQuery_MissingUserIsValidationError(t *testing.T) {
	err := GetInsightQuery{InsightID: uuid.New().String()}.Validate()
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestListInsightsQuery_MissingUserIsValidationError(t *testing.T) {
	err := ListInsightsQuery{}.Validate()
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}
