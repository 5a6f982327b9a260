package dynamodb

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insightapi/domain/analysis"
	"insightapi/domain/insight"
)

func TestItemRoundTrip(t *testing.T) {
	req, err := analysis.NewRequest("A ferry operator connecting three island towns.", analysis.ModeMarketingStrategist, analysis.KindMarketTrends)
	require.NoError(t, err)

	record := analysis.Record{
		Strengths:     []string{"only operator on the route"},
		Weaknesses:    []string{"aging fleet"},
		Opportunities: []string{"tourist season upside"},
		Threats:       []string{"fuel price volatility"},
	}
	ins, err := insight.New(uuid.New().String(), "user-9", req, record, analysis.DeriveChartSeries(record))
	require.NoError(t, err)

	got, err := fromItem(toItem(ins))
	require.NoError(t, err)

	assert.Equal(t, ins.ID, got.ID)
	assert.Equal(t, ins.UserID, got.UserID)
	assert.Equal(t, ins.Request, got.Request)
	assert.Equal(t, ins.Record, got.Record)
	assert.True(t, ins.Series.Equals(got.Series))
	assert.True(t, ins.CreatedAt.Equal(got.CreatedAt))
}

func TestItemKeys(t *testing.T) {
	assert.Equal(t, "USER#user-9", userPK("user-9"))
	assert.Equal(t, "INSIGHT#abc", insightSK("abc"))
}

func TestFromItem_InvalidTimestamp(t *testing.T) {
	item := insightItem{
		InsightID: "x",
		UserID:    "user-9",
		CreatedAt: "not-a-timestamp",
	}

	_, err := fromItem(item)
	assert.Error(t, err)
}
